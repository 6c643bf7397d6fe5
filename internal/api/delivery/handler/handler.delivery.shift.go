// Package deliveryhdl - handler cho domain delivery.
package deliveryhdl

import (
	"fmt"

	basehdl "farm_market/internal/api/base/handler"
	deliverydto "farm_market/internal/api/delivery/dto"
	models "farm_market/internal/api/delivery/models"
	deliverysvc "farm_market/internal/api/delivery/service"
	"farm_market/internal/common"
	"farm_market/internal/global"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeliveryShiftHandler xử lý các request liên quan đến ca giao hàng
type DeliveryShiftHandler struct {
	*basehdl.BaseHandler[models.DeliveryShift, deliverydto.DeliveryShiftCreateInput, deliverydto.DeliveryShiftUpdateInput]
	shiftService *deliverysvc.DeliveryShiftService
}

// NewDeliveryShiftHandler tạo instance mới của DeliveryShiftHandler
func NewDeliveryShiftHandler() (*DeliveryShiftHandler, error) {
	shiftService, err := deliverysvc.NewDeliveryShiftService()
	if err != nil {
		return nil, fmt.Errorf("failed to create delivery shift service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.DeliveryShift, deliverydto.DeliveryShiftCreateInput, deliverydto.DeliveryShiftUpdateInput](shiftService)
	return &DeliveryShiftHandler{
		BaseHandler:  baseHandler,
		shiftService: shiftService,
	}, nil
}

// pathObjectID đọc và parse tham số :id trên path
func pathObjectID(c fiber.Ctx) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "ID không đúng định dạng", common.StatusBadRequest, err)
	}
	return id, nil
}

// HandleCreate tạo ca giao hàng mới cho một bối cảnh (center, date, shift)
func (h *DeliveryShiftHandler) HandleCreate(c fiber.Ctx) error {
	var input deliverydto.DeliveryShiftCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	shift, err := h.shiftService.Create(c.Context(), &input)
	h.HandleResponse(c, shift, err)
	return nil
}

// HandleAssignDeliverer phân công người giao vào ca :id
func (h *DeliveryShiftHandler) HandleAssignDeliverer(c fiber.Ctx) error {
	shiftID, err := pathObjectID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input deliverydto.ShiftAssignDelivererInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	delivererID, err := primitive.ObjectIDFromHex(input.DelivererID)
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "delivererId không đúng định dạng", common.StatusBadRequest, err))
		return nil
	}
	shift, err := h.shiftService.AssignDeliverer(c.Context(), shiftID, delivererID)
	h.HandleResponse(c, shift, err)
	return nil
}

// HandleAssignOrder gán đơn hàng vào ca :id
func (h *DeliveryShiftHandler) HandleAssignOrder(c fiber.Ctx) error {
	shiftID, err := pathObjectID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input deliverydto.ShiftAssignOrderInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	orderID, err := primitive.ObjectIDFromHex(input.OrderID)
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "orderId không đúng định dạng", common.StatusBadRequest, err))
		return nil
	}
	shift, err := h.shiftService.AssignOrder(c.Context(), shiftID, orderID)
	h.HandleResponse(c, shift, err)
	return nil
}

// HandleAvailableDeliverers liệt kê người giao khả dụng cho ?date=&shift=
func (h *DeliveryShiftHandler) HandleAvailableDeliverers(c fiber.Ctx) error {
	date := c.Query("date")
	shift := c.Query("shift")
	if err := global.Validate.Var(date, "required,date_yyyymmdd"); err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "date không hợp lệ", common.StatusBadRequest, err))
		return nil
	}
	if err := global.Validate.Var(shift, "required,shift"); err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "shift không hợp lệ", common.StatusBadRequest, err))
		return nil
	}
	delivererIDs, err := h.shiftService.AvailableDeliverers(c.Context(), date, shift)
	h.HandleResponse(c, delivererIDs, err)
	return nil
}
