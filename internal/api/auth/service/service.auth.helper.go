// Package authsvc - helper kiểm tra quyền admin và truyền userID qua context.
package authsvc

import (
	"context"
	"errors"
	"fmt"

	basesvc "farm_market/internal/api/base/service"
	"farm_market/internal/common"
	"farm_market/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdministratorRoleName tên vai trò quản trị hệ thống.
const AdministratorRoleName = "Administrator"

// IsUserAdministrator kiểm tra user có vai trò Administrator hay không.
func IsUserAdministrator(ctx context.Context, userID primitive.ObjectID) (bool, error) {
	roleService, err := NewRoleService()
	if err != nil {
		return false, fmt.Errorf("failed to create role service: %w", err)
	}
	adminRole, err := roleService.FindOne(ctx, bson.M{"name": AdministratorRoleName}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	userRoleCollection, exist := global.RegistryCollections.Get(global.ColNames.UserRoles)
	if !exist {
		return false, fmt.Errorf("failed to get user_roles collection: %v", common.ErrNotFound)
	}
	count, err := userRoleCollection.CountDocuments(ctx, bson.M{"userId": userID, "roleId": adminRole.ID})
	if err != nil {
		return false, common.ConvertMongoError(err)
	}
	return count > 0, nil
}

type contextKey string

const userIDContextKey contextKey = "user_id"

// SetUserIDToContext lưu userID vào context
func SetUserIDToContext(ctx context.Context, userID primitive.ObjectID) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

// GetUserIDFromContext lấy userID từ context
func GetUserIDFromContext(ctx context.Context) (primitive.ObjectID, bool) {
	userID, ok := ctx.Value(userIDContextKey).(primitive.ObjectID)
	return userID, ok
}

// IsUserAdministratorFromContext kiểm tra user trong context có phải Administrator không
func IsUserAdministratorFromContext(ctx context.Context) (bool, error) {
	userID, ok := GetUserIDFromContext(ctx)
	if !ok {
		return false, nil
	}
	return IsUserAdministrator(ctx, userID)
}

// RegisterAdminCheck đăng ký callback kiểm tra admin cho base service
// (tránh import cycle basesvc -> authsvc).
func RegisterAdminCheck() {
	basesvc.SetIsAdminFromContextFunc(IsUserAdministratorFromContext)
}
