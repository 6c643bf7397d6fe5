// Package logisticssvc - service cho domain logistics.
package logisticssvc

import (
	"context"
	"fmt"

	basesvc "farm_market/internal/api/base/service"
	models "farm_market/internal/api/logistics/models"
	"farm_market/internal/common"
	"farm_market/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LogisticsCenterService là cấu trúc chứa các phương thức liên quan đến trung tâm logistics
type LogisticsCenterService struct {
	*basesvc.BaseServiceMongoImpl[models.LogisticsCenter]
}

// NewLogisticsCenterService tạo mới LogisticsCenterService
func NewLogisticsCenterService() (*LogisticsCenterService, error) {
	centerCollection, exist := global.RegistryCollections.Get(global.ColNames.LogisticsCenters)
	if !exist {
		return nil, fmt.Errorf("failed to get logistics centers collection: %v", common.ErrNotFound)
	}
	return &LogisticsCenterService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.LogisticsCenter](centerCollection),
	}, nil
}

// FindActiveById tìm trung tâm theo id, yêu cầu đang hoạt động
func (s *LogisticsCenterService) FindActiveById(ctx context.Context, id primitive.ObjectID) (models.LogisticsCenter, error) {
	center, err := s.FindOne(ctx, bson.M{"_id": id, "active": true}, nil)
	if err != nil {
		return center, common.NewError(
			common.ErrCodeBusinessOperation,
			"Trung tâm logistics không tồn tại hoặc đã ngừng hoạt động",
			common.StatusBadRequest,
			map[string]interface{}{"centerId": id.Hex()},
		)
	}
	return center, nil
}
