// Package markethdl - handler cho domain market.
package markethdl

import (
	"fmt"

	basehdl "farm_market/internal/api/base/handler"
	marketdto "farm_market/internal/api/market/dto"
	models "farm_market/internal/api/market/models"
	marketsvc "farm_market/internal/api/market/service"
	"farm_market/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartHandler xử lý các request giỏ hàng của khách
type CartHandler struct {
	*basehdl.BaseHandler[models.Cart, marketdto.CartSetLineInput, marketdto.CartUpdateInput]
	cartService *marketsvc.CartService
}

// NewCartHandler tạo instance mới của CartHandler
func NewCartHandler() (*CartHandler, error) {
	cartService, err := marketsvc.NewCartService()
	if err != nil {
		return nil, fmt.Errorf("failed to create cart service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Cart, marketdto.CartSetLineInput, marketdto.CartUpdateInput](cartService)
	return &CartHandler{
		BaseHandler: baseHandler,
		cartService: cartService,
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

// HandleGetCart khách xem giỏ hàng hiện tại
func (h *CartHandler) HandleGetCart(c fiber.Ctx) error {
	customerID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	cart, err := h.cartService.GetCart(c.Context(), customerID)
	h.HandleResponse(c, cart, err)
	return nil
}

// HandleSetLine đặt/cập nhật/gỡ một dòng giỏ (quantity = 0 là gỡ)
func (h *CartHandler) HandleSetLine(c fiber.Ctx) error {
	customerID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input marketdto.CartSetLineInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	cart, contextChanged, err := h.cartService.SetLine(c.Context(), customerID, &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, fiber.Map{
		"cart":           cart,
		"contextChanged": contextChanged,
	}, nil)
	return nil
}

// HandleClear khách xóa toàn bộ giỏ
func (h *CartHandler) HandleClear(c fiber.Ctx) error {
	customerID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	err = h.cartService.Clear(c.Context(), customerID)
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleCheckout chuyển giỏ thành đơn hàng
func (h *CartHandler) HandleCheckout(c fiber.Ctx) error {
	customerID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	order, err := h.cartService.Checkout(c.Context(), customerID)
	h.HandleResponse(c, order, err)
	return nil
}
