package deliveryhdl

import (
	"fmt"

	basehdl "farm_market/internal/api/base/handler"
	deliverydto "farm_market/internal/api/delivery/dto"
	models "farm_market/internal/api/delivery/models"
	deliverysvc "farm_market/internal/api/delivery/service"
	"farm_market/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DelivererScheduleHandler xử lý các request lịch khả dụng của người giao hàng
type DelivererScheduleHandler struct {
	*basehdl.BaseHandler[models.DelivererSchedule, deliverydto.ScheduleSetInput, deliverydto.ScheduleSetInput]
	scheduleService *deliverysvc.DelivererScheduleService
}

// NewDelivererScheduleHandler tạo instance mới của DelivererScheduleHandler
func NewDelivererScheduleHandler() (*DelivererScheduleHandler, error) {
	scheduleService, err := deliverysvc.NewDelivererScheduleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create deliverer schedule service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.DelivererSchedule, deliverydto.ScheduleSetInput, deliverydto.ScheduleSetInput](scheduleService)
	return &DelivererScheduleHandler{
		BaseHandler:     baseHandler,
		scheduleService: scheduleService,
	}, nil
}

// currentUserID lấy ObjectID của user đang đăng nhập từ context
func currentUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	userIDStr, _ := c.Locals("user_id").(string)
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeAuth, "User not authenticated", common.StatusUnauthorized, err)
	}
	return userID, nil
}

// HandleGetMySchedule người giao xem lịch khả dụng của chính mình
func (h *DelivererScheduleHandler) HandleGetMySchedule(c fiber.Ctx) error {
	delivererID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	schedule, err := h.scheduleService.GetByDeliverer(c.Context(), delivererID)
	h.HandleResponse(c, schedule, err)
	return nil
}

// HandleSetMySchedule người giao ghi toàn bộ bitmap lịch của mình
func (h *DelivererScheduleHandler) HandleSetMySchedule(c fiber.Ctx) error {
	delivererID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input deliverydto.ScheduleSetInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	schedule, err := h.scheduleService.SetBitmap(c.Context(), delivererID, input.Bitmap)
	h.HandleResponse(c, schedule, err)
	return nil
}

// HandleSetMySlot người giao bật/tắt một ô (ngày, ca) trong lịch của mình
func (h *DelivererScheduleHandler) HandleSetMySlot(c fiber.Ctx) error {
	delivererID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input deliverydto.ScheduleSlotInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	schedule, err := h.scheduleService.SetSlot(c.Context(), delivererID, input.Day, input.Shift, input.Available)
	h.HandleResponse(c, schedule, err)
	return nil
}
