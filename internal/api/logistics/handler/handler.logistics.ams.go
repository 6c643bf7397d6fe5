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

// AmsSnapshotHandler xử lý các request đọc và làm mới snapshot tồn kho bán
type AmsSnapshotHandler struct {
	*basehdl.BaseHandler[models.AmsSnapshot, logisticsdto.AmsContextInput, logisticsdto.AmsContextInput]
	amsService *logisticssvc.AmsSnapshotService
}

// NewAmsSnapshotHandler tạo instance mới của AmsSnapshotHandler
func NewAmsSnapshotHandler() (*AmsSnapshotHandler, error) {
	amsService, err := logisticssvc.NewAmsSnapshotService()
	if err != nil {
		return nil, fmt.Errorf("failed to create ams snapshot service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.AmsSnapshot, logisticsdto.AmsContextInput, logisticsdto.AmsContextInput](amsService)
	return &AmsSnapshotHandler{
		BaseHandler: baseHandler,
		amsService:  amsService,
	}, nil
}

// parseAmsContext lấy bối cảnh (center, date, shift) từ query string
func (h *AmsSnapshotHandler) parseAmsContext(c fiber.Ctx) (primitive.ObjectID, string, string, error) {
	centerIDStr := c.Query("centerId")
	date := c.Query("date")
	shift := c.Query("shift")
	if centerIDStr == "" || date == "" || shift == "" {
		return primitive.NilObjectID, "", "", common.NewError(
			common.ErrCodeValidationInput,
			"Thiếu tham số bối cảnh: centerId, date, shift là bắt buộc",
			common.StatusBadRequest,
			nil,
		)
	}
	centerID, err := primitive.ObjectIDFromHex(centerIDStr)
	if err != nil {
		return primitive.NilObjectID, "", "", common.NewError(common.ErrCodeValidationFormat, "centerId không đúng định dạng", common.StatusBadRequest, err)
	}
	return centerID, date, shift, nil
}

// HandleGetContext đọc snapshot AMS của một bối cảnh
func (h *AmsSnapshotHandler) HandleGetContext(c fiber.Ctx) error {
	centerID, date, shift, err := h.parseAmsContext(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	snapshot, err := h.amsService.GetContext(c.Context(), centerID, date, shift)
	h.HandleResponse(c, snapshot, err)
	return nil
}

// HandleRefresh dựng lại snapshot AMS của một bối cảnh theo yêu cầu
func (h *AmsSnapshotHandler) HandleRefresh(c fiber.Ctx) error {
	var input logisticsdto.AmsContextInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	centerID, err := primitive.ObjectIDFromHex(input.CenterID)
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "centerId không đúng định dạng", common.StatusBadRequest, err))
		return nil
	}
	result, err := h.amsService.Refresh(c.Context(), centerID, input.Date, input.Shift)
	h.HandleResponse(c, result, err)
	return nil
}
