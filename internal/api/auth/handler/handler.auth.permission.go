package authhdl

import (
	"fmt"

	authdto "farm_market/internal/api/auth/dto"
	models "farm_market/internal/api/auth/models"
	authsvc "farm_market/internal/api/auth/service"
	basehdl "farm_market/internal/api/base/handler"
)

// PermissionHandler xử lý các request CRUD cho Permission (chủ yếu read-only,
// danh mục quyền được seed bởi InitService)
type PermissionHandler struct {
	*basehdl.BaseHandler[models.Permission, authdto.PermissionCreateInput, authdto.PermissionUpdateInput]
	permissionService *authsvc.PermissionService
}

// NewPermissionHandler tạo instance mới của PermissionHandler
func NewPermissionHandler() (*PermissionHandler, error) {
	permissionService, err := authsvc.NewPermissionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create permission service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Permission, authdto.PermissionCreateInput, authdto.PermissionUpdateInput](permissionService)
	return &PermissionHandler{
		BaseHandler:       baseHandler,
		permissionService: permissionService,
	}, nil
}
