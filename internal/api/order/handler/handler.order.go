// Package orderhdl - handler cho domain order.
package orderhdl

import (
	"fmt"

	basehdl "farm_market/internal/api/base/handler"
	orderdto "farm_market/internal/api/order/dto"
	models "farm_market/internal/api/order/models"
	ordersvc "farm_market/internal/api/order/service"
	"farm_market/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderHandler xử lý các request cho đơn hàng khách
type OrderHandler struct {
	*basehdl.BaseHandler[models.Order, orderdto.OrderCreateInput, orderdto.OrderUpdateInput]
	orderService *ordersvc.OrderService
}

// NewOrderHandler tạo instance mới của OrderHandler
func NewOrderHandler() (*OrderHandler, error) {
	orderService, err := ordersvc.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Order, orderdto.OrderCreateInput, orderdto.OrderUpdateInput](orderService)
	return &OrderHandler{
		BaseHandler:  baseHandler,
		orderService: orderService,
	}, nil
}

// pathObjectID lấy ObjectID từ URI param :id
func pathObjectID(c fiber.Ctx) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "ID không đúng định dạng", common.StatusBadRequest, err)
	}
	return id, nil
}

// HandleConfirm CS xác nhận đơn hàng
func (h *OrderHandler) HandleConfirm(c fiber.Ctx) error {
	id, err := pathObjectID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	result, err := h.orderService.Confirm(c.Context(), id)
	h.HandleResponse(c, result, err)
	return nil
}

// HandleCancel CS hủy đơn hàng với lý do bắt buộc
func (h *OrderHandler) HandleCancel(c fiber.Ctx) error {
	id, err := pathObjectID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input orderdto.OrderCancelInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	result, err := h.orderService.Cancel(c.Context(), id, input.Note)
	h.HandleResponse(c, result, err)
	return nil
}

// HandlePick người giao hàng đánh dấu đã lấy hàng
func (h *OrderHandler) HandlePick(c fiber.Ctx) error {
	id, err := pathObjectID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	result, err := h.orderService.Pick(c.Context(), id)
	h.HandleResponse(c, result, err)
	return nil
}

// HandleStartDelivering người giao hàng bắt đầu giao
func (h *OrderHandler) HandleStartDelivering(c fiber.Ctx) error {
	id, err := pathObjectID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	result, err := h.orderService.StartDelivering(c.Context(), id)
	h.HandleResponse(c, result, err)
	return nil
}

// HandleMarkDelivered người giao hàng xác nhận đã giao thành công
func (h *OrderHandler) HandleMarkDelivered(c fiber.Ctx) error {
	id, err := pathObjectID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	result, err := h.orderService.MarkDelivered(c.Context(), id)
	h.HandleResponse(c, result, err)
	return nil
}

// HandleMyOrders khách xem danh sách đơn của mình (phân trang)
func (h *OrderHandler) HandleMyOrders(c fiber.Ctx) error {
	userIDStr, _ := c.Locals("user_id").(string)
	customerID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuth, "User not authenticated", common.StatusUnauthorized, err))
		return nil
	}
	page, limit := h.ParsePagination(c)
	result, err := h.orderService.FindWithPagination(c.Context(), map[string]interface{}{"customerId": customerID}, page, limit, nil)
	h.HandleResponse(c, result, err)
	return nil
}
