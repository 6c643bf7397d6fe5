// Package catalogsvc - service cho domain catalog.
package catalogsvc

import (
	"context"
	"fmt"

	models "farm_market/internal/api/catalog/models"
	basesvc "farm_market/internal/api/base/service"
	"farm_market/internal/common"
	"farm_market/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ItemService là cấu trúc chứa các phương thức liên quan đến mặt hàng
type ItemService struct {
	*basesvc.BaseServiceMongoImpl[models.Item]
}

// NewItemService tạo mới ItemService
func NewItemService() (*ItemService, error) {
	itemCollection, exist := global.RegistryCollections.Get(global.ColNames.Items)
	if !exist {
		return nil, fmt.Errorf("failed to get items collection: %v", common.ErrNotFound)
	}
	return &ItemService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Item](itemCollection),
	}, nil
}

// FindActiveById tìm mặt hàng theo id, yêu cầu mặt hàng đang active.
// Dùng khi validate dòng hàng của đơn nông dân và giỏ hàng.
func (s *ItemService) FindActiveById(ctx context.Context, id primitive.ObjectID) (models.Item, error) {
	item, err := s.FindOne(ctx, bson.M{"_id": id, "active": true}, nil)
	if err != nil {
		return item, common.NewError(
			common.ErrCodeBusinessOperation,
			"Mặt hàng không tồn tại hoặc đã ngừng kinh doanh",
			common.StatusBadRequest,
			map[string]interface{}{"itemId": id.Hex()},
		)
	}
	return item, nil
}

// ValidateQuantity kiểm tra số lượng theo chế độ đơn vị của mặt hàng:
// weight cho phép số lẻ, piece bắt buộc số nguyên. Số lượng luôn phải > 0.
func (s *ItemService) ValidateQuantity(item models.Item, quantity float64) error {
	if quantity <= 0 {
		return common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Số lượng của mặt hàng '%s' phải lớn hơn 0", item.Name),
			common.StatusBadRequest,
			nil,
		)
	}
	if item.UnitMode == models.UnitModePiece && quantity != float64(int64(quantity)) {
		return common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Mặt hàng '%s' bán theo cái, số lượng phải là số nguyên", item.Name),
			common.StatusBadRequest,
			nil,
		)
	}
	return nil
}
