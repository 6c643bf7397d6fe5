// Package router đăng ký các route thuộc domain market: Cart + checkout.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	markethdl "farm_market/internal/api/market/handler"
	"farm_market/internal/api/middleware"
	apirouter "farm_market/internal/api/router"
)

// Register đăng ký tất cả route market lên v1.
// Giỏ hàng là tài nguyên cá nhân, chỉ cần đăng nhập (không cần permission).
func Register(v1 fiber.Router, r *apirouter.Router) error {
	cartHandler, err := markethdl.NewCartHandler()
	if err != nil {
		return fmt.Errorf("failed to create cart handler: %w", err)
	}

	authOnlyMiddleware := middleware.AuthMiddleware("")
	apirouter.RegisterRouteWithMiddleware(v1, "/cart", "GET", "/", []fiber.Handler{authOnlyMiddleware}, cartHandler.HandleGetCart)
	apirouter.RegisterRouteWithMiddleware(v1, "/cart", "POST", "/set-line", []fiber.Handler{authOnlyMiddleware}, cartHandler.HandleSetLine)
	apirouter.RegisterRouteWithMiddleware(v1, "/cart", "POST", "/clear", []fiber.Handler{authOnlyMiddleware}, cartHandler.HandleClear)
	apirouter.RegisterRouteWithMiddleware(v1, "/cart", "POST", "/checkout", []fiber.Handler{authOnlyMiddleware}, cartHandler.HandleCheckout)

	return nil
}
