package logisticssvc

import (
	"context"
	"fmt"

	basesvc "farm_market/internal/api/base/service"
	logisticsdto "farm_market/internal/api/logistics/dto"
	models "farm_market/internal/api/logistics/models"
	"farm_market/internal/common"
	"farm_market/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ShelfCrowdService là cấu trúc chứa các phương thức liên quan đến snapshot độ đầy kệ
type ShelfCrowdService struct {
	*basesvc.BaseServiceMongoImpl[models.ShelfCrowd]
}

// NewShelfCrowdService tạo mới ShelfCrowdService
func NewShelfCrowdService() (*ShelfCrowdService, error) {
	shelfCollection, exist := global.RegistryCollections.Get(global.ColNames.ShelfCrowds)
	if !exist {
		return nil, fmt.Errorf("failed to get shelf crowds collection: %v", common.ErrNotFound)
	}
	return &ShelfCrowdService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ShelfCrowd](shelfCollection),
	}, nil
}

// contextFilter filter theo bối cảnh (center, date, shift)
func shelfContextFilter(centerID primitive.ObjectID, date, shift string) bson.M {
	return bson.M{"centerId": centerID, "date": date, "shift": shift}
}

// UpsertContext ghi snapshot độ đầy kệ theo bối cảnh. FillRatio được tính lại
// từ số container đã đặt trên tổng sức chứa.
func (s *ShelfCrowdService) UpsertContext(ctx context.Context, input *logisticsdto.ShelfCrowdUpsertInput) (*models.ShelfCrowd, error) {
	centerID, err := primitive.ObjectIDFromHex(input.CenterID)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "centerId không đúng định dạng", common.StatusBadRequest, err)
	}
	if input.ContainersPlaced > input.Capacity {
		return nil, common.NewError(
			common.ErrCodeBusinessOperation,
			"Số container đã đặt vượt quá sức chứa của kệ",
			common.StatusBadRequest,
			nil,
		)
	}

	snapshot := models.ShelfCrowd{
		CenterID:         centerID,
		Date:             input.Date,
		Shift:            input.Shift,
		Capacity:         input.Capacity,
		ContainersPlaced: input.ContainersPlaced,
		FillRatio:        float64(input.ContainersPlaced) / float64(input.Capacity),
	}
	result, err := s.Upsert(ctx, shelfContextFilter(centerID, input.Date, input.Shift), snapshot)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return &result, nil
}

// RecomputeContainersPlaced cập nhật lại số container đã đặt cho một bối cảnh
// (gọi sau khi thêm/gỡ phân bổ container). Giữ nguyên capacity hiện có;
// bỏ qua nếu bối cảnh chưa có snapshot.
func (s *ShelfCrowdService) RecomputeContainersPlaced(ctx context.Context, centerID primitive.ObjectID, date, shift string, containersPlaced int64) error {
	snapshot, err := s.FindOne(ctx, shelfContextFilter(centerID, date, shift), nil)
	if err != nil {
		return nil
	}
	fillRatio := 0.0
	if snapshot.Capacity > 0 {
		fillRatio = float64(containersPlaced) / float64(snapshot.Capacity)
	}
	_, err = s.UpdateById(ctx, snapshot.ID, &basesvc.UpdateData{Set: map[string]interface{}{
		"containersPlaced": containersPlaced,
		"fillRatio":        fillRatio,
	}})
	return common.ConvertMongoError(err)
}
