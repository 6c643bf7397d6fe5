package deliverysvc

import (
	"context"
	"fmt"

	basesvc "farm_market/internal/api/base/service"
	deliverydto "farm_market/internal/api/delivery/dto"
	models "farm_market/internal/api/delivery/models"
	logisticssvc "farm_market/internal/api/logistics/service"
	ordermodels "farm_market/internal/api/order/models"
	ordersvc "farm_market/internal/api/order/service"
	"farm_market/internal/common"
	"farm_market/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeliveryShiftService là cấu trúc chứa các phương thức liên quan đến ca giao hàng
type DeliveryShiftService struct {
	*basesvc.BaseServiceMongoImpl[models.DeliveryShift]
	centerService   *logisticssvc.LogisticsCenterService
	orderService    *ordersvc.OrderService
	scheduleService *DelivererScheduleService
}

// NewDeliveryShiftService tạo mới DeliveryShiftService
func NewDeliveryShiftService() (*DeliveryShiftService, error) {
	shiftCollection, exist := global.RegistryCollections.Get(global.ColNames.DeliveryShifts)
	if !exist {
		return nil, fmt.Errorf("failed to get delivery shifts collection: %v", common.ErrNotFound)
	}
	centerService, err := logisticssvc.NewLogisticsCenterService()
	if err != nil {
		return nil, fmt.Errorf("failed to create logistics center service: %v", err)
	}
	orderService, err := ordersvc.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %v", err)
	}
	scheduleService, err := NewDelivererScheduleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create deliverer schedule service: %v", err)
	}
	return &DeliveryShiftService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.DeliveryShift](shiftCollection),
		centerService:        centerService,
		orderService:         orderService,
		scheduleService:      scheduleService,
	}, nil
}

// Create tạo ca giao hàng mới cho một bối cảnh (center, date, shift).
// Mỗi bối cảnh chỉ có một ca.
func (s *DeliveryShiftService) Create(ctx context.Context, input *deliverydto.DeliveryShiftCreateInput) (*models.DeliveryShift, error) {
	centerID, err := primitive.ObjectIDFromHex(input.CenterID)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "centerId không đúng định dạng", common.StatusBadRequest, err)
	}
	if _, err := s.centerService.FindActiveById(ctx, centerID); err != nil {
		return nil, err
	}

	contextFilter := bson.M{"centerId": centerID, "date": input.Date, "shift": input.Shift}
	exists, err := s.DocumentExists(ctx, contextFilter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if exists {
		return nil, common.NewError(
			common.ErrCodeBusinessOperation,
			"Ca giao hàng cho bối cảnh này đã tồn tại",
			common.StatusConflict,
			map[string]interface{}{"centerId": input.CenterID, "date": input.Date, "shift": input.Shift},
		)
	}

	created, err := s.InsertOne(ctx, models.DeliveryShift{
		CenterID:     centerID,
		Date:         input.Date,
		Shift:        input.Shift,
		Capacity:     input.Capacity,
		DelivererIDs: []primitive.ObjectID{},
		OrderIDs:     []primitive.ObjectID{},
	})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	logrus.WithFields(logrus.Fields{
		"shift_id":  created.ID.Hex(),
		"center_id": input.CenterID,
		"date":      input.Date,
		"shift":     input.Shift,
	}).Info("Delivery: Tạo ca giao hàng")
	return &created, nil
}

// AssignDeliverer phân công một người giao vào ca. Người giao phải có lịch
// khả dụng bật cho (date, shift) của ca.
func (s *DeliveryShiftService) AssignDeliverer(ctx context.Context, shiftID, delivererID primitive.ObjectID) (*models.DeliveryShift, error) {
	shift, err := s.FindOneById(ctx, shiftID)
	if err != nil {
		return nil, common.ErrNotFound
	}
	if shift.HasDeliverer(delivererID) {
		return &shift, nil
	}

	schedule, err := s.scheduleService.GetByDeliverer(ctx, delivererID)
	if err != nil {
		return nil, err
	}
	available, err := schedule.IsAvailable(shift.Date, shift.Shift)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationInput, err.Error(), common.StatusBadRequest, nil)
	}
	if !available {
		return nil, common.NewError(
			common.ErrCodeBusinessOperation,
			"Người giao hàng không đăng ký khả dụng cho ca này",
			common.StatusConflict,
			map[string]interface{}{"delivererId": delivererID.Hex(), "date": shift.Date, "shift": shift.Shift},
		)
	}

	updated, err := s.UpdateById(ctx, shiftID, &basesvc.UpdateData{
		Set: map[string]interface{}{"delivererIds": append(shift.DelivererIDs, delivererID)},
	})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	logrus.WithFields(logrus.Fields{
		"shift_id":     shiftID.Hex(),
		"deliverer_id": delivererID.Hex(),
	}).Info("Delivery: Phân công người giao vào ca")
	return &updated, nil
}

// AssignOrder gán một đơn hàng vào ca. Đơn phải ở trạng thái picked, cùng
// bối cảnh (center, date, shift) với ca, và ca còn chỗ theo capacity.
func (s *DeliveryShiftService) AssignOrder(ctx context.Context, shiftID, orderID primitive.ObjectID) (*models.DeliveryShift, error) {
	shift, err := s.FindOneById(ctx, shiftID)
	if err != nil {
		return nil, common.ErrNotFound
	}
	if shift.HasOrder(orderID) {
		return &shift, nil
	}

	order, err := s.orderService.FindOneById(ctx, orderID)
	if err != nil {
		return nil, common.ErrNotFound
	}
	if order.Status != ordermodels.OrderStatusPicked {
		return nil, common.NewError(
			common.ErrCodeBusinessState,
			fmt.Sprintf("Chỉ gán được đơn đã soạn hàng vào ca, đơn đang ở trạng thái '%s'", order.Status),
			common.StatusBadRequest,
			nil,
		)
	}
	if order.CenterID != shift.CenterID || order.Date != shift.Date || order.Shift != shift.Shift {
		return nil, common.NewError(
			common.ErrCodeBusinessOperation,
			"Đơn hàng không thuộc bối cảnh giao nhận của ca",
			common.StatusConflict,
			map[string]interface{}{"orderId": orderID.Hex(), "shiftId": shiftID.Hex()},
		)
	}
	if int64(len(shift.OrderIDs)) >= shift.Capacity {
		return nil, common.NewError(
			common.ErrCodeBusinessOperation,
			"Ca giao hàng đã đầy",
			common.StatusConflict,
			map[string]interface{}{"capacity": shift.Capacity, "assigned": len(shift.OrderIDs)},
		)
	}

	updated, err := s.UpdateById(ctx, shiftID, &basesvc.UpdateData{
		Set: map[string]interface{}{"orderIds": append(shift.OrderIDs, orderID)},
	})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	logrus.WithFields(logrus.Fields{
		"shift_id": shiftID.Hex(),
		"order_id": orderID.Hex(),
	}).Info("Delivery: Gán đơn hàng vào ca")
	return &updated, nil
}

// AvailableDeliverers liệt kê những người giao khả dụng cho (date, shift),
// dùng khi lập kế hoạch phân công ca.
func (s *DeliveryShiftService) AvailableDeliverers(ctx context.Context, date, shift string) ([]primitive.ObjectID, error) {
	schedules, err := s.scheduleService.FindAvailable(ctx, date, shift)
	if err != nil {
		return nil, err
	}
	delivererIDs := make([]primitive.ObjectID, 0, len(schedules))
	for _, schedule := range schedules {
		delivererIDs = append(delivererIDs, schedule.DelivererID)
	}
	return delivererIDs, nil
}
