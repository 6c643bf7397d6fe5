package authhdl

import (
	"fmt"

	authdto "farm_market/internal/api/auth/dto"
	models "farm_market/internal/api/auth/models"
	authsvc "farm_market/internal/api/auth/service"
	basehdl "farm_market/internal/api/base/handler"
)

// RoleHandler xử lý các request CRUD cho Role
type RoleHandler struct {
	*basehdl.BaseHandler[models.Role, authdto.RoleCreateInput, authdto.RoleUpdateInput]
	roleService *authsvc.RoleService
}

// NewRoleHandler tạo instance mới của RoleHandler
func NewRoleHandler() (*RoleHandler, error) {
	roleService, err := authsvc.NewRoleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create role service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Role, authdto.RoleCreateInput, authdto.RoleUpdateInput](roleService)
	return &RoleHandler{
		BaseHandler: baseHandler,
		roleService: roleService,
	}, nil
}
