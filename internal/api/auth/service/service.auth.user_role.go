// Package authsvc - service vai trò người dùng (UserRole).
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

// UserRoleService là cấu trúc chứa các phương thức liên quan đến vai trò người dùng
type UserRoleService struct {
	*basesvc.BaseServiceMongoImpl[models.UserRole]
	roleService *basesvc.BaseServiceMongoImpl[models.Role]
}

// NewUserRoleService tạo mới UserRoleService
func NewUserRoleService() (*UserRoleService, error) {
	userRoleCollection, exist := global.RegistryCollections.Get(global.ColNames.UserRoles)
	if !exist {
		return nil, fmt.Errorf("failed to get user_roles collection: %v", common.ErrNotFound)
	}
	roleCollection, exist := global.RegistryCollections.Get(global.ColNames.Roles)
	if !exist {
		return nil, fmt.Errorf("failed to get roles collection: %v", common.ErrNotFound)
	}
	return &UserRoleService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.UserRole](userRoleCollection),
		roleService:          basesvc.NewBaseServiceMongo[models.Role](roleCollection),
	}, nil
}

// UpdateUserRoles thay toàn bộ danh sách vai trò của một người dùng.
func (s *UserRoleService) UpdateUserRoles(ctx context.Context, userID primitive.ObjectID, roleIDs []string) ([]models.UserRole, error) {
	objIDs := make([]primitive.ObjectID, 0, len(roleIDs))
	for _, idStr := range roleIDs {
		objID := utility.String2ObjectID(idStr)
		if objID.IsZero() {
			return nil, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("Role ID không hợp lệ: %s", idStr), common.StatusBadRequest, nil)
		}
		if _, err := s.roleService.FindOneById(ctx, objID); err != nil {
			return nil, common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("Role không tồn tại: %s", idStr), common.StatusBadRequest, nil)
		}
		objIDs = append(objIDs, objID)
	}

	if _, err := s.BaseServiceMongoImpl.DeleteMany(ctx, bson.M{"userId": userID}); err != nil {
		return nil, err
	}

	results := make([]models.UserRole, 0, len(objIDs))
	for _, roleID := range objIDs {
		created, err := s.BaseServiceMongoImpl.InsertOne(ctx, models.UserRole{UserID: userID, RoleID: roleID})
		if err != nil {
			return nil, err
		}
		results = append(results, created)
	}
	return results, nil
}
