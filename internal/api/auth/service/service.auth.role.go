// Package authsvc - service vai trò (Role).
package authsvc

import (
	"fmt"

	models "farm_market/internal/api/auth/models"
	basesvc "farm_market/internal/api/base/service"
	"farm_market/internal/common"
	"farm_market/internal/global"
)

// RoleService là cấu trúc chứa các phương thức liên quan đến vai trò
type RoleService struct {
	*basesvc.BaseServiceMongoImpl[models.Role]
}

// NewRoleService tạo mới RoleService
func NewRoleService() (*RoleService, error) {
	roleCollection, exist := global.RegistryCollections.Get(global.ColNames.Roles)
	if !exist {
		return nil, fmt.Errorf("failed to get roles collection: %v", common.ErrNotFound)
	}
	return &RoleService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Role](roleCollection),
	}, nil
}
