package logisticshdl

import (
	"fmt"

	basehdl "farm_market/internal/api/base/handler"
	logisticsdto "farm_market/internal/api/logistics/dto"
	models "farm_market/internal/api/logistics/models"
	logisticssvc "farm_market/internal/api/logistics/service"
	"farm_market/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContainerAssignmentHandler xử lý các request phân bổ container
type ContainerAssignmentHandler struct {
	*basehdl.BaseHandler[models.ContainerAssignment, logisticsdto.ContainerAssignmentCreateInput, logisticsdto.ContainerAssignmentUpdateInput]
	containerAssignmentService *logisticssvc.ContainerAssignmentService
}

// NewContainerAssignmentHandler tạo instance mới của ContainerAssignmentHandler
func NewContainerAssignmentHandler() (*ContainerAssignmentHandler, error) {
	caService, err := logisticssvc.NewContainerAssignmentService()
	if err != nil {
		return nil, fmt.Errorf("failed to create container assignment service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.ContainerAssignment, logisticsdto.ContainerAssignmentCreateInput, logisticsdto.ContainerAssignmentUpdateInput](caService)
	return &ContainerAssignmentHandler{
		BaseHandler:                baseHandler,
		containerAssignmentService: caService,
	}, nil
}

// HandleAssign phân bổ container cho một đơn nông dân đã tiếp nhận
func (h *ContainerAssignmentHandler) HandleAssign(c fiber.Ctx) error {
	var input logisticsdto.ContainerAssignmentCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	result, err := h.containerAssignmentService.Assign(c.Context(), &input)
	h.HandleResponse(c, result, err)
	return nil
}

// HandleUnassign gỡ phân bổ container theo id
func (h *ContainerAssignmentHandler) HandleUnassign(c fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không đúng định dạng", common.StatusBadRequest, err))
		return nil
	}
	err = h.containerAssignmentService.Unassign(c.Context(), id)
	h.HandleResponse(c, nil, err)
	return nil
}
