// Package router đăng ký các route thuộc domain logistics: LogisticsCenter,
// ShelfCrowd, ContainerAssignment, AmsSnapshot.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	logisticshdl "farm_market/internal/api/logistics/handler"
	"farm_market/internal/api/middleware"
	apirouter "farm_market/internal/api/router"
)

// Register đăng ký tất cả route logistics lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	centerHandler, err := logisticshdl.NewLogisticsCenterHandler()
	if err != nil {
		return fmt.Errorf("failed to create logistics center handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/logistics-center", centerHandler, apirouter.ReadWriteConfig, "LogisticsCenter")

	shelfHandler, err := logisticshdl.NewShelfCrowdHandler()
	if err != nil {
		return fmt.Errorf("failed to create shelf crowd handler: %w", err)
	}
	shelfUpdateMiddleware := middleware.AuthMiddleware("ShelfCrowd.Update")
	apirouter.RegisterRouteWithMiddleware(v1, "/shelf-crowd", "POST", "/upsert-context", []fiber.Handler{shelfUpdateMiddleware}, shelfHandler.HandleUpsertContext)
	r.RegisterCRUDRoutes(v1, "/shelf-crowd", shelfHandler, apirouter.SnapshotConfig, "ShelfCrowd")

	caHandler, err := logisticshdl.NewContainerAssignmentHandler()
	if err != nil {
		return fmt.Errorf("failed to create container assignment handler: %w", err)
	}
	caInsertMiddleware := middleware.AuthMiddleware("ContainerAssignment.Insert")
	caDeleteMiddleware := middleware.AuthMiddleware("ContainerAssignment.Delete")
	apirouter.RegisterRouteWithMiddleware(v1, "/container-assignment", "POST", "/assign", []fiber.Handler{caInsertMiddleware}, caHandler.HandleAssign)
	apirouter.RegisterRouteWithMiddleware(v1, "/container-assignment", "DELETE", "/unassign/:id", []fiber.Handler{caDeleteMiddleware}, caHandler.HandleUnassign)
	r.RegisterCRUDRoutes(v1, "/container-assignment", caHandler, apirouter.ReadOnlyConfig, "ContainerAssignment")

	amsHandler, err := logisticshdl.NewAmsSnapshotHandler()
	if err != nil {
		return fmt.Errorf("failed to create ams snapshot handler: %w", err)
	}
	amsReadMiddleware := middleware.AuthMiddleware("AmsSnapshot.Read")
	amsRefreshMiddleware := middleware.AuthMiddleware("AmsSnapshot.Refresh")
	apirouter.RegisterRouteWithMiddleware(v1, "/ams", "GET", "/context", []fiber.Handler{amsReadMiddleware}, amsHandler.HandleGetContext)
	apirouter.RegisterRouteWithMiddleware(v1, "/ams", "POST", "/refresh", []fiber.Handler{amsRefreshMiddleware}, amsHandler.HandleRefresh)
	// AMS chỉ được ghi qua refresh/checkout, route CRUD chỉ mở phần đọc
	r.RegisterCRUDRoutes(v1, "/ams", amsHandler, apirouter.ReadOnlyConfig, "AmsSnapshot")

	return nil
}
