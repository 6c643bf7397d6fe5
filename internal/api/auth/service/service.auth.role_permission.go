// Package authsvc - service phân quyền vai trò (RolePermission).
package authsvc

import (
	"context"
	"fmt"

	models "farm_market/internal/api/auth/models"
	basesvc "farm_market/internal/api/base/service"
	"farm_market/internal/common"
	"farm_market/internal/global"
	"farm_market/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RolePermissionService là cấu trúc chứa các phương thức liên quan đến phân quyền vai trò
type RolePermissionService struct {
	*basesvc.BaseServiceMongoImpl[models.RolePermission]
	permissionService *basesvc.BaseServiceMongoImpl[models.Permission]
}

// NewRolePermissionService tạo mới RolePermissionService
func NewRolePermissionService() (*RolePermissionService, error) {
	rolePermissionCollection, exist := global.RegistryCollections.Get(global.ColNames.RolePermissions)
	if !exist {
		return nil, fmt.Errorf("failed to get role_permissions collection: %v", common.ErrNotFound)
	}
	permissionCollection, exist := global.RegistryCollections.Get(global.ColNames.Permissions)
	if !exist {
		return nil, fmt.Errorf("failed to get permissions collection: %v", common.ErrNotFound)
	}
	return &RolePermissionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.RolePermission](rolePermissionCollection),
		permissionService:    basesvc.NewBaseServiceMongo[models.Permission](permissionCollection),
	}, nil
}

// UpdateRolePermissions thay toàn bộ danh sách quyền của một vai trò.
// Xóa các phân quyền cũ rồi tạo lại theo danh sách permissionIds truyền vào.
func (s *RolePermissionService) UpdateRolePermissions(ctx context.Context, roleID primitive.ObjectID, permissionIDs []string, scope byte, createdBy primitive.ObjectID) ([]models.RolePermission, error) {
	// Kiểm tra mọi permission đều tồn tại trước khi thay
	objIDs := make([]primitive.ObjectID, 0, len(permissionIDs))
	for _, idStr := range permissionIDs {
		objID := utility.String2ObjectID(idStr)
		if objID.IsZero() {
			return nil, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("Permission ID không hợp lệ: %s", idStr), common.StatusBadRequest, nil)
		}
		if _, err := s.permissionService.FindOneById(ctx, objID); err != nil {
			return nil, common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("Permission không tồn tại: %s", idStr), common.StatusBadRequest, nil)
		}
		objIDs = append(objIDs, objID)
	}

	if _, err := s.BaseServiceMongoImpl.DeleteMany(ctx, bson.M{"roleId": roleID}); err != nil {
		return nil, err
	}

	results := make([]models.RolePermission, 0, len(objIDs))
	for _, permID := range objIDs {
		rp := models.RolePermission{
			RoleID:          roleID,
			PermissionID:    permID,
			Scope:           scope,
			CreatedByUserID: createdBy,
		}
		created, err := s.BaseServiceMongoImpl.InsertOne(ctx, rp)
		if err != nil {
			return nil, err
		}
		results = append(results, created)
	}
	return results, nil
}
