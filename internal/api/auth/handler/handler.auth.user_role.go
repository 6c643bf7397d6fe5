package authhdl

import (
	"fmt"

	authdto "farm_market/internal/api/auth/dto"
	models "farm_market/internal/api/auth/models"
	authsvc "farm_market/internal/api/auth/service"
	basehdl "farm_market/internal/api/base/handler"
	"farm_market/internal/api/middleware"
	"farm_market/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRoleHandler xử lý các request CRUD cho UserRole
type UserRoleHandler struct {
	*basehdl.BaseHandler[models.UserRole, authdto.UserRoleCreateInput, authdto.UserRoleUpdateInput]
	userRoleService *authsvc.UserRoleService
}

// NewUserRoleHandler tạo instance mới của UserRoleHandler
func NewUserRoleHandler() (*UserRoleHandler, error) {
	userRoleService, err := authsvc.NewUserRoleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user role service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.UserRole, authdto.UserRoleCreateInput, authdto.UserRoleUpdateInput](userRoleService)
	return &UserRoleHandler{
		BaseHandler:     baseHandler,
		userRoleService: userRoleService,
	}, nil
}

// HandleUpdateUserRoles thay toàn bộ danh sách vai trò của một người dùng.
// Sau khi đổi role phải invalidate cache permission để thay đổi có hiệu lực ngay.
func (h *UserRoleHandler) HandleUpdateUserRoles(c fiber.Ctx) error {
	var input authdto.UpdateUserRolesInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	userID, err := primitive.ObjectIDFromHex(input.UserID)
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "userId không đúng định dạng", common.StatusBadRequest, err))
		return nil
	}

	result, err := h.userRoleService.UpdateUserRoles(c.Context(), userID, input.RoleIDs)
	if err == nil {
		middleware.GetAuthManager().InvalidateUserPermissions(input.UserID)
	}
	h.HandleResponse(c, result, err)
	return nil
}
