package cataloghdl

import (
	"fmt"

	catalogdto "farm_market/internal/api/catalog/dto"
	models "farm_market/internal/api/catalog/models"
	catalogsvc "farm_market/internal/api/catalog/service"
	basehdl "farm_market/internal/api/base/handler"
)

// QualityStandardHandler xử lý các request CRUD cho QualityStandard
type QualityStandardHandler struct {
	*basehdl.BaseHandler[models.QualityStandard, catalogdto.QualityStandardCreateInput, catalogdto.QualityStandardUpdateInput]
	qualityStandardService *catalogsvc.QualityStandardService
}

// NewQualityStandardHandler tạo instance mới của QualityStandardHandler
func NewQualityStandardHandler() (*QualityStandardHandler, error) {
	qsService, err := catalogsvc.NewQualityStandardService()
	if err != nil {
		return nil, fmt.Errorf("failed to create quality standard service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.QualityStandard, catalogdto.QualityStandardCreateInput, catalogdto.QualityStandardUpdateInput](qsService)
	return &QualityStandardHandler{
		BaseHandler:            baseHandler,
		qualityStandardService: qsService,
	}, nil
}
