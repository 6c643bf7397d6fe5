// Package authsvc - service quản trị (Admin): block user, set role.
package authsvc

import (
	"context"
	"errors"
	"fmt"

	models "farm_market/internal/api/auth/models"
	basesvc "farm_market/internal/api/base/service"
	"farm_market/internal/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminService là cấu trúc chứa các phương thức liên quan đến admin
type AdminService struct {
	userService     *UserService
	roleService     *RoleService
	userRoleService *UserRoleService
}

// NewAdminService tạo mới AdminService
func NewAdminService() (*AdminService, error) {
	userService, err := NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}
	roleService, err := NewRoleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create role service: %w", err)
	}
	userRoleService, err := NewUserRoleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user_role service: %w", err)
	}
	return &AdminService{
		userService:     userService,
		roleService:     roleService,
		userRoleService: userRoleService,
	}, nil
}

// SetRole gán Role cho User dựa trên Email và RoleID.
// Nếu user đã có role này thì giữ nguyên.
func (s *AdminService) SetRole(ctx context.Context, email string, roleID primitive.ObjectID) (*models.UserRole, error) {
	_, err := s.roleService.FindOneById(ctx, roleID)
	if err != nil {
		return nil, err
	}

	filter := bson.M{"email": email}
	user, err := s.userService.FindOne(ctx, filter, nil)
	if err != nil {
		return nil, err
	}

	existingFilter := bson.M{"userId": user.ID, "roleId": roleID}
	existing, err := s.userRoleService.FindOne(ctx, existingFilter, nil)
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	created, err := s.userRoleService.InsertOne(ctx, models.UserRole{UserID: user.ID, RoleID: roleID})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// BlockUser chặn hoặc bỏ chặn User dựa trên Email và trạng thái Block.
// Khi khóa, thu hồi toàn bộ token hiện có.
func (s *AdminService) BlockUser(ctx context.Context, email string, block bool, note string) (*models.User, error) {
	filter := bson.M{"email": email}
	user, err := s.userService.FindOne(ctx, filter, nil)
	if err != nil {
		return nil, err
	}

	set := map[string]interface{}{
		"isBlock":   block,
		"blockNote": note,
	}
	if block {
		set["token"] = ""
		set["tokens"] = []models.Token{}
	}
	updatedUser, err := s.userService.UpdateById(ctx, user.ID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &updatedUser, nil
}

// UnBlockUser mở khóa người dùng
func (s *AdminService) UnBlockUser(ctx context.Context, email string) (*models.User, error) {
	return s.BlockUser(ctx, email, false, "")
}
