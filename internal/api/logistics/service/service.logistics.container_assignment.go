package logisticssvc

import (
	"context"
	"fmt"

	basesvc "farm_market/internal/api/base/service"
	farmermodels "farm_market/internal/api/farmer/models"
	logisticsdto "farm_market/internal/api/logistics/dto"
	models "farm_market/internal/api/logistics/models"
	"farm_market/internal/common"
	"farm_market/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContainerAssignmentService là cấu trúc chứa các phương thức phân bổ container
type ContainerAssignmentService struct {
	*basesvc.BaseServiceMongoImpl[models.ContainerAssignment]
	farmerOrderCRUD   *basesvc.BaseServiceMongoImpl[farmermodels.FarmerOrder]
	shelfCrowdService *ShelfCrowdService
}

// NewContainerAssignmentService tạo mới ContainerAssignmentService
func NewContainerAssignmentService() (*ContainerAssignmentService, error) {
	caCollection, exist := global.RegistryCollections.Get(global.ColNames.ContainerAssignments)
	if !exist {
		return nil, fmt.Errorf("failed to get container assignments collection: %v", common.ErrNotFound)
	}
	foCollection, exist := global.RegistryCollections.Get(global.ColNames.FarmerOrders)
	if !exist {
		return nil, fmt.Errorf("failed to get farmer orders collection: %v", common.ErrNotFound)
	}
	shelfCrowdService, err := NewShelfCrowdService()
	if err != nil {
		return nil, fmt.Errorf("failed to create shelf crowd service: %v", err)
	}
	return &ContainerAssignmentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ContainerAssignment](caCollection),
		farmerOrderCRUD:      basesvc.NewBaseServiceMongo[farmermodels.FarmerOrder](foCollection),
		shelfCrowdService:    shelfCrowdService,
	}, nil
}

// Assign phân bổ container cho một đơn nông dân đã tiếp nhận. Bối cảnh
// (center, date, shift) được lấy từ đơn; sau khi phân bổ, snapshot độ đầy kệ
// của bối cảnh được cập nhật lại.
func (s *ContainerAssignmentService) Assign(ctx context.Context, input *logisticsdto.ContainerAssignmentCreateInput) (*models.ContainerAssignment, error) {
	farmerOrderID, err := primitive.ObjectIDFromHex(input.FarmerOrderID)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "farmerOrderId không đúng định dạng", common.StatusBadRequest, err)
	}

	farmerOrder, err := s.farmerOrderCRUD.FindOneById(ctx, farmerOrderID)
	if err != nil {
		return nil, common.ErrNotFound
	}
	if farmerOrder.Status != farmermodels.FarmerOrderStatusAccepted &&
		farmerOrder.Status != farmermodels.FarmerOrderStatusFulfilled {
		return nil, common.NewError(
			common.ErrCodeBusinessState,
			"Chỉ phân bổ container cho đơn đã được tiếp nhận",
			common.StatusBadRequest,
			map[string]interface{}{"status": farmerOrder.Status},
		)
	}

	assignment := models.ContainerAssignment{
		FarmerOrderID: farmerOrderID,
		CenterID:      farmerOrder.CenterID,
		Date:          farmerOrder.PickupDate,
		Shift:         farmerOrder.Shift,
		ContainerCode: input.ContainerCode,
		ShelfSlot:     input.ShelfSlot,
	}
	created, err := s.InsertOne(ctx, assignment)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	// Cập nhật lại độ đầy kệ của bối cảnh (best effort)
	count, err := s.CountDocuments(ctx, bson.M{
		"centerId": farmerOrder.CenterID,
		"date":     farmerOrder.PickupDate,
		"shift":    farmerOrder.Shift,
	})
	if err == nil {
		_ = s.shelfCrowdService.RecomputeContainersPlaced(ctx, farmerOrder.CenterID, farmerOrder.PickupDate, farmerOrder.Shift, count)
	}

	return &created, nil
}

// Unassign gỡ phân bổ container và cập nhật lại độ đầy kệ
func (s *ContainerAssignmentService) Unassign(ctx context.Context, id primitive.ObjectID) error {
	assignment, err := s.FindOneById(ctx, id)
	if err != nil {
		return common.ErrNotFound
	}
	if err := s.DeleteById(ctx, id); err != nil {
		return common.ConvertMongoError(err)
	}

	count, err := s.CountDocuments(ctx, bson.M{
		"centerId": assignment.CenterID,
		"date":     assignment.Date,
		"shift":    assignment.Shift,
	})
	if err == nil {
		_ = s.shelfCrowdService.RecomputeContainersPlaced(ctx, assignment.CenterID, assignment.Date, assignment.Shift, count)
	}
	return nil
}
