// Package router đăng ký các route thuộc domain farmer: FarmerOrder.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	farmerhdl "farm_market/internal/api/farmer/handler"
	"farm_market/internal/api/middleware"
	apirouter "farm_market/internal/api/router"
)

// Register đăng ký tất cả route farmer lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	foHandler, err := farmerhdl.NewFarmerOrderHandler()
	if err != nil {
		return fmt.Errorf("failed to create farmer order handler: %w", err)
	}

	// Các nghiệp vụ vòng đời đơn: tạo/sửa/gửi (nông dân), tiếp nhận/từ chối/
	// hoàn tất (trung tâm). Đăng ký trước route CRUD để path cụ thể được ưu tiên.
	insertMiddleware := middleware.AuthMiddleware("FarmerOrder.Insert")
	updateMiddleware := middleware.AuthMiddleware("FarmerOrder.Update")
	deleteMiddleware := middleware.AuthMiddleware("FarmerOrder.Delete")
	submitMiddleware := middleware.AuthMiddleware("FarmerOrder.Submit")
	acceptMiddleware := middleware.AuthMiddleware("FarmerOrder.Accept")
	rejectMiddleware := middleware.AuthMiddleware("FarmerOrder.Reject")
	fulfillMiddleware := middleware.AuthMiddleware("FarmerOrder.Fulfill")

	apirouter.RegisterRouteWithMiddleware(v1, "/farmer-order", "POST", "/create", []fiber.Handler{insertMiddleware}, foHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/farmer-order", "PUT", "/update/:id", []fiber.Handler{updateMiddleware}, foHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(v1, "/farmer-order", "DELETE", "/delete/:id", []fiber.Handler{deleteMiddleware}, foHandler.HandleDelete)
	apirouter.RegisterRouteWithMiddleware(v1, "/farmer-order", "POST", "/submit/:id", []fiber.Handler{submitMiddleware}, foHandler.HandleSubmit)
	apirouter.RegisterRouteWithMiddleware(v1, "/farmer-order", "POST", "/accept/:id", []fiber.Handler{acceptMiddleware}, foHandler.HandleAccept)
	apirouter.RegisterRouteWithMiddleware(v1, "/farmer-order", "POST", "/reject/:id", []fiber.Handler{rejectMiddleware}, foHandler.HandleReject)
	apirouter.RegisterRouteWithMiddleware(v1, "/farmer-order", "POST", "/fulfill/:id", []fiber.Handler{fulfillMiddleware}, foHandler.HandleFulfill)

	r.RegisterCRUDRoutes(v1, "/farmer-order", foHandler, apirouter.ReadOnlyConfig, "FarmerOrder")

	return nil
}
