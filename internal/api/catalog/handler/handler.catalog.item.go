// Package cataloghdl - handler cho domain catalog.
package cataloghdl

import (
	"fmt"

	catalogdto "farm_market/internal/api/catalog/dto"
	models "farm_market/internal/api/catalog/models"
	catalogsvc "farm_market/internal/api/catalog/service"
	basehdl "farm_market/internal/api/base/handler"
)

// ItemHandler xử lý các request CRUD cho Item
type ItemHandler struct {
	*basehdl.BaseHandler[models.Item, catalogdto.ItemCreateInput, catalogdto.ItemUpdateInput]
	itemService *catalogsvc.ItemService
}

// NewItemHandler tạo instance mới của ItemHandler
func NewItemHandler() (*ItemHandler, error) {
	itemService, err := catalogsvc.NewItemService()
	if err != nil {
		return nil, fmt.Errorf("failed to create item service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Item, catalogdto.ItemCreateInput, catalogdto.ItemUpdateInput](itemService)
	return &ItemHandler{
		BaseHandler: baseHandler,
		itemService: itemService,
	}, nil
}
