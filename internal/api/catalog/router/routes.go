// Package router đăng ký các route thuộc domain catalog: Item, QualityStandard.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "farm_market/internal/api/catalog/handler"
	apirouter "farm_market/internal/api/router"
)

// Register đăng ký tất cả route catalog lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	itemHandler, err := cataloghdl.NewItemHandler()
	if err != nil {
		return fmt.Errorf("failed to create item handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/item", itemHandler, apirouter.ReadWriteConfig, "Item")

	qsHandler, err := cataloghdl.NewQualityStandardHandler()
	if err != nil {
		return fmt.Errorf("failed to create quality standard handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/quality-standard", qsHandler, apirouter.ReadWriteConfig, "QualityStandard")

	return nil
}
