// Package farmerhdl - handler cho domain farmer.
package farmerhdl

import (
	"fmt"

	basehdl "farm_market/internal/api/base/handler"
	farmerdto "farm_market/internal/api/farmer/dto"
	models "farm_market/internal/api/farmer/models"
	farmersvc "farm_market/internal/api/farmer/service"
	"farm_market/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FarmerOrderHandler xử lý các request cho đơn giao nông sản
type FarmerOrderHandler struct {
	*basehdl.BaseHandler[models.FarmerOrder, farmerdto.FarmerOrderCreateInput, farmerdto.FarmerOrderUpdateInput]
	farmerOrderService *farmersvc.FarmerOrderService
}

// NewFarmerOrderHandler tạo instance mới của FarmerOrderHandler
func NewFarmerOrderHandler() (*FarmerOrderHandler, error) {
	foService, err := farmersvc.NewFarmerOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create farmer order service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.FarmerOrder, farmerdto.FarmerOrderCreateInput, farmerdto.FarmerOrderUpdateInput](foService)
	return &FarmerOrderHandler{
		BaseHandler:        baseHandler,
		farmerOrderService: foService,
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

// pathObjectID lấy ObjectID từ URI param :id
func pathObjectID(c fiber.Ctx) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "ID không đúng định dạng", common.StatusBadRequest, err)
	}
	return id, nil
}

// HandleCreate nông dân tạo đơn giao mới (trạng thái draft)
func (h *FarmerOrderHandler) HandleCreate(c fiber.Ctx) error {
	farmerID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input farmerdto.FarmerOrderCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	result, err := h.farmerOrderService.Create(c.Context(), farmerID, &input)
	h.HandleResponse(c, result, err)
	return nil
}

// HandleUpdate nông dân cập nhật đơn draft của mình
func (h *FarmerOrderHandler) HandleUpdate(c fiber.Ctx) error {
	farmerID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	id, err := pathObjectID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input farmerdto.FarmerOrderUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	result, err := h.farmerOrderService.Update(c.Context(), id, farmerID, &input)
	h.HandleResponse(c, result, err)
	return nil
}

// HandleDelete nông dân xóa đơn draft của mình
func (h *FarmerOrderHandler) HandleDelete(c fiber.Ctx) error {
	farmerID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	id, err := pathObjectID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	err = h.farmerOrderService.Delete(c.Context(), id, farmerID)
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleSubmit nông dân gửi đơn draft lên trung tâm
func (h *FarmerOrderHandler) HandleSubmit(c fiber.Ctx) error {
	farmerID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	id, err := pathObjectID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	result, err := h.farmerOrderService.Submit(c.Context(), id, farmerID)
	h.HandleResponse(c, result, err)
	return nil
}

// HandleAccept trung tâm tiếp nhận đơn với số liệu kiểm định
func (h *FarmerOrderHandler) HandleAccept(c fiber.Ctx) error {
	id, err := pathObjectID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input farmerdto.FarmerOrderAcceptInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	result, err := h.farmerOrderService.Accept(c.Context(), id, &input)
	h.HandleResponse(c, result, err)
	return nil
}

// HandleReject trung tâm từ chối đơn với lý do bắt buộc
func (h *FarmerOrderHandler) HandleReject(c fiber.Ctx) error {
	id, err := pathObjectID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input farmerdto.FarmerOrderRejectInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	result, err := h.farmerOrderService.Reject(c.Context(), id, input.Note)
	h.HandleResponse(c, result, err)
	return nil
}

// HandleFulfill đánh dấu đơn đã giao đủ hàng tại trung tâm
func (h *FarmerOrderHandler) HandleFulfill(c fiber.Ctx) error {
	id, err := pathObjectID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	result, err := h.farmerOrderService.Fulfill(c.Context(), id)
	h.HandleResponse(c, result, err)
	return nil
}
