// Package router đăng ký các route thuộc domain order: Order.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"farm_market/internal/api/middleware"
	orderhdl "farm_market/internal/api/order/handler"
	apirouter "farm_market/internal/api/router"
)

// Register đăng ký tất cả route order lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	orderHandler, err := orderhdl.NewOrderHandler()
	if err != nil {
		return fmt.Errorf("failed to create order handler: %w", err)
	}

	// Khách hàng chỉ có Order.ReadOwn: danh sách đơn luôn lọc theo customerId.
	// Order.Read (xem mọi đơn qua route CRUD) chỉ cấp cho các vai trò vận hành.
	readOwnMiddleware := middleware.AuthMiddleware("Order.ReadOwn")
	confirmMiddleware := middleware.AuthMiddleware("Order.Confirm")
	cancelMiddleware := middleware.AuthMiddleware("Order.Cancel")
	pickMiddleware := middleware.AuthMiddleware("Order.Pick")
	deliverMiddleware := middleware.AuthMiddleware("Order.Deliver")

	apirouter.RegisterRouteWithMiddleware(v1, "/order", "GET", "/my-orders", []fiber.Handler{readOwnMiddleware}, orderHandler.HandleMyOrders)
	apirouter.RegisterRouteWithMiddleware(v1, "/order", "POST", "/confirm/:id", []fiber.Handler{confirmMiddleware}, orderHandler.HandleConfirm)
	apirouter.RegisterRouteWithMiddleware(v1, "/order", "POST", "/cancel/:id", []fiber.Handler{cancelMiddleware}, orderHandler.HandleCancel)
	apirouter.RegisterRouteWithMiddleware(v1, "/order", "POST", "/pick/:id", []fiber.Handler{pickMiddleware}, orderHandler.HandlePick)
	apirouter.RegisterRouteWithMiddleware(v1, "/order", "POST", "/start-delivering/:id", []fiber.Handler{deliverMiddleware}, orderHandler.HandleStartDelivering)
	apirouter.RegisterRouteWithMiddleware(v1, "/order", "POST", "/mark-delivered/:id", []fiber.Handler{deliverMiddleware}, orderHandler.HandleMarkDelivered)

	r.RegisterCRUDRoutes(v1, "/order", orderHandler, apirouter.ReadOnlyConfig, "Order")

	return nil
}
