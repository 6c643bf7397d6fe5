// Package logisticshdl - handler cho domain logistics.
package logisticshdl

import (
	"fmt"

	basehdl "farm_market/internal/api/base/handler"
	logisticsdto "farm_market/internal/api/logistics/dto"
	models "farm_market/internal/api/logistics/models"
	logisticssvc "farm_market/internal/api/logistics/service"
)

// LogisticsCenterHandler xử lý các request CRUD cho LogisticsCenter
type LogisticsCenterHandler struct {
	*basehdl.BaseHandler[models.LogisticsCenter, logisticsdto.LogisticsCenterCreateInput, logisticsdto.LogisticsCenterUpdateInput]
	centerService *logisticssvc.LogisticsCenterService
}

// NewLogisticsCenterHandler tạo instance mới của LogisticsCenterHandler
func NewLogisticsCenterHandler() (*LogisticsCenterHandler, error) {
	centerService, err := logisticssvc.NewLogisticsCenterService()
	if err != nil {
		return nil, fmt.Errorf("failed to create logistics center service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.LogisticsCenter, logisticsdto.LogisticsCenterCreateInput, logisticsdto.LogisticsCenterUpdateInput](centerService)
	return &LogisticsCenterHandler{
		BaseHandler:   baseHandler,
		centerService: centerService,
	}, nil
}
