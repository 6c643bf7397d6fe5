// Package ordersvc - service đơn hàng khách.
package ordersvc

import (
	"context"
	"fmt"
	"time"

	basesvc "farm_market/internal/api/base/service"
	logisticssvc "farm_market/internal/api/logistics/service"
	models "farm_market/internal/api/order/models"
	"farm_market/internal/common"
	"farm_market/internal/global"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderService là cấu trúc chứa các phương thức liên quan đến đơn hàng khách
type OrderService struct {
	*basesvc.BaseServiceMongoImpl[models.Order]
	amsService *logisticssvc.AmsSnapshotService
}

// NewOrderService tạo mới OrderService
func NewOrderService() (*OrderService, error) {
	orderCollection, exist := global.RegistryCollections.Get(global.ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("failed to get orders collection: %v", common.ErrNotFound)
	}
	amsService, err := logisticssvc.NewAmsSnapshotService()
	if err != nil {
		return nil, fmt.Errorf("failed to create ams snapshot service: %v", err)
	}
	return &OrderService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Order](orderCollection),
		amsService:           amsService,
	}, nil
}

// ValidateLines kiểm tra bất biến của các dòng đơn: không trùng liên kết
// farmerOrderId+itemId trong cùng một đơn.
func ValidateLines(lines []models.OrderLine) error {
	seen := make(map[string]bool, len(lines))
	for _, line := range lines {
		key := line.FarmerOrderID.Hex() + ":" + line.ItemID.Hex()
		if seen[key] {
			return common.ErrDuplicateOrderLine
		}
		seen[key] = true
	}
	return nil
}

// Create tạo đơn hàng mới ở trạng thái pending với mã nhận hàng duy nhất.
// Được gọi từ checkout giỏ hàng sau khi tồn kho AMS đã được trừ.
func (s *OrderService) Create(ctx context.Context, customerID, centerID primitive.ObjectID, date, shift string, lines []models.OrderLine) (*models.Order, error) {
	if len(lines) == 0 {
		return nil, common.ErrInvalidInput
	}
	if err := ValidateLines(lines); err != nil {
		return nil, err
	}

	total := 0.0
	for _, line := range lines {
		total += line.Quantity * line.UnitPrice
	}

	order := models.Order{
		CustomerID: customerID,
		CenterID:   centerID,
		Date:       date,
		Shift:      shift,
		Lines:      lines,
		Total:      total,
		Status:     models.OrderStatusPending,
		PickupCode: uuid.NewString(),
	}
	created, err := s.InsertOne(ctx, order)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	logrus.WithFields(logrus.Fields{
		"order_id":    created.ID.Hex(),
		"customer_id": customerID.Hex(),
		"total":       total,
	}).Info("Order: Tạo đơn hàng khách")
	return &created, nil
}

// transition chuyển trạng thái đơn với guard trên trạng thái hiện tại
func (s *OrderService) transition(ctx context.Context, order models.Order, to string, extraSet map[string]interface{}) (*models.Order, error) {
	if !models.CanTransition(order.Status, to) {
		return nil, common.NewError(
			common.ErrCodeBusinessState,
			fmt.Sprintf("Không thể chuyển đơn từ trạng thái '%s' sang '%s'", order.Status, to),
			common.StatusBadRequest,
			nil,
		)
	}
	set := map[string]interface{}{"status": to}
	for k, v := range extraSet {
		set[k] = v
	}
	updated, err := s.UpdateById(ctx, order.ID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	logrus.WithFields(logrus.Fields{
		"order_id": order.ID.Hex(),
		"from":     order.Status,
		"to":       to,
	}).Info("Order: Chuyển trạng thái đơn hàng")
	return &updated, nil
}

// Confirm CS xác nhận đơn hàng
func (s *OrderService) Confirm(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	order, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, common.ErrNotFound
	}
	return s.transition(ctx, order, models.OrderStatusConfirmed, map[string]interface{}{
		"confirmedAt": time.Now().UnixMilli(),
	})
}

// Cancel CS hủy đơn hàng với lý do. Tồn kho AMS được hoàn trả.
func (s *OrderService) Cancel(ctx context.Context, id primitive.ObjectID, note string) (*models.Order, error) {
	order, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, common.ErrNotFound
	}
	updated, err := s.transition(ctx, order, models.OrderStatusCancelled, map[string]interface{}{
		"cancelNote": note,
	})
	if err != nil {
		return nil, err
	}

	restores := make([]logisticssvc.AmsDecrement, 0, len(order.Lines))
	for _, line := range order.Lines {
		restores = append(restores, logisticssvc.AmsDecrement{
			ItemID:        line.ItemID,
			FarmerOrderID: line.FarmerOrderID,
			Quantity:      line.Quantity,
		})
	}
	if err := s.amsService.RestoreLines(ctx, order.CenterID, order.Date, order.Shift, restores); err != nil {
		logrus.WithFields(logrus.Fields{
			"order_id": order.ID.Hex(),
			"error":    err.Error(),
		}).Warn("Order: Không thể hoàn trả tồn kho AMS khi hủy đơn")
	}
	return updated, nil
}

// Pick người giao hàng đánh dấu đã lấy hàng tại trung tâm
func (s *OrderService) Pick(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	order, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, common.ErrNotFound
	}
	return s.transition(ctx, order, models.OrderStatusPicked, nil)
}

// StartDelivering người giao hàng bắt đầu giao
func (s *OrderService) StartDelivering(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	order, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, common.ErrNotFound
	}
	return s.transition(ctx, order, models.OrderStatusDelivering, nil)
}

// MarkDelivered người giao hàng xác nhận đã giao thành công
func (s *OrderService) MarkDelivered(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	order, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, common.ErrNotFound
	}
	return s.transition(ctx, order, models.OrderStatusDelivered, map[string]interface{}{
		"deliveredAt": time.Now().UnixMilli(),
	})
}
