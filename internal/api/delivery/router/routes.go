// Package router đăng ký các route thuộc domain delivery: DeliveryShift + DelivererSchedule.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	deliveryhdl "farm_market/internal/api/delivery/handler"
	"farm_market/internal/api/middleware"
	apirouter "farm_market/internal/api/router"
)

// Register đăng ký tất cả route delivery lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	shiftHandler, err := deliveryhdl.NewDeliveryShiftHandler()
	if err != nil {
		return fmt.Errorf("failed to create delivery shift handler: %w", err)
	}
	scheduleHandler, err := deliveryhdl.NewDelivererScheduleHandler()
	if err != nil {
		return fmt.Errorf("failed to create deliverer schedule handler: %w", err)
	}

	// Tạo ca đi qua route nghiệp vụ riêng để giữ guard mỗi bối cảnh một ca;
	// insert generic bị tắt trong config CRUD bên dưới.
	insertMiddleware := middleware.AuthMiddleware("DeliveryShift.Insert")
	assignMiddleware := middleware.AuthMiddleware("DeliveryShift.Assign")
	readMiddleware := middleware.AuthMiddleware("DeliveryShift.Read")

	apirouter.RegisterRouteWithMiddleware(v1, "/delivery-shift", "POST", "/create", []fiber.Handler{insertMiddleware}, shiftHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/delivery-shift", "POST", "/assign-deliverer/:id", []fiber.Handler{assignMiddleware}, shiftHandler.HandleAssignDeliverer)
	apirouter.RegisterRouteWithMiddleware(v1, "/delivery-shift", "POST", "/assign-order/:id", []fiber.Handler{assignMiddleware}, shiftHandler.HandleAssignOrder)
	apirouter.RegisterRouteWithMiddleware(v1, "/delivery-shift", "GET", "/available-deliverers", []fiber.Handler{readMiddleware}, shiftHandler.HandleAvailableDeliverers)

	shiftConfig := apirouter.ReadOnlyConfig
	shiftConfig.UpdById = true
	shiftConfig.DelById = true
	r.RegisterCRUDRoutes(v1, "/delivery-shift", shiftHandler, shiftConfig, "DeliveryShift")

	// Lịch khả dụng: người giao thao tác trên lịch của chính mình
	scheduleReadMiddleware := middleware.AuthMiddleware("DelivererSchedule.Read")
	scheduleUpdateMiddleware := middleware.AuthMiddleware("DelivererSchedule.Update")

	apirouter.RegisterRouteWithMiddleware(v1, "/deliverer-schedule", "GET", "/my-schedule", []fiber.Handler{scheduleReadMiddleware}, scheduleHandler.HandleGetMySchedule)
	apirouter.RegisterRouteWithMiddleware(v1, "/deliverer-schedule", "PUT", "/set", []fiber.Handler{scheduleUpdateMiddleware}, scheduleHandler.HandleSetMySchedule)
	apirouter.RegisterRouteWithMiddleware(v1, "/deliverer-schedule", "PUT", "/set-slot", []fiber.Handler{scheduleUpdateMiddleware}, scheduleHandler.HandleSetMySlot)

	r.RegisterCRUDRoutes(v1, "/deliverer-schedule", scheduleHandler, apirouter.ReadOnlyConfig, "DelivererSchedule")

	return nil
}
