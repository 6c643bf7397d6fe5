package logisticshdl

import (
	"fmt"

	basehdl "farm_market/internal/api/base/handler"
	logisticsdto "farm_market/internal/api/logistics/dto"
	models "farm_market/internal/api/logistics/models"
	logisticssvc "farm_market/internal/api/logistics/service"

	"github.com/gofiber/fiber/v3"
)

// ShelfCrowdHandler xử lý các request cho snapshot độ đầy kệ
type ShelfCrowdHandler struct {
	*basehdl.BaseHandler[models.ShelfCrowd, logisticsdto.ShelfCrowdUpsertInput, logisticsdto.ShelfCrowdUpdateInput]
	shelfCrowdService *logisticssvc.ShelfCrowdService
}

// NewShelfCrowdHandler tạo instance mới của ShelfCrowdHandler
func NewShelfCrowdHandler() (*ShelfCrowdHandler, error) {
	shelfCrowdService, err := logisticssvc.NewShelfCrowdService()
	if err != nil {
		return nil, fmt.Errorf("failed to create shelf crowd service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.ShelfCrowd, logisticsdto.ShelfCrowdUpsertInput, logisticsdto.ShelfCrowdUpdateInput](shelfCrowdService)
	return &ShelfCrowdHandler{
		BaseHandler:       baseHandler,
		shelfCrowdService: shelfCrowdService,
	}, nil
}

// HandleUpsertContext ghi snapshot độ đầy kệ theo bối cảnh (center, date, shift)
func (h *ShelfCrowdHandler) HandleUpsertContext(c fiber.Ctx) error {
	var input logisticsdto.ShelfCrowdUpsertInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	result, err := h.shelfCrowdService.UpsertContext(c.Context(), &input)
	h.HandleResponse(c, result, err)
	return nil
}
