package authhdl

import (
	"fmt"

	authdto "farm_market/internal/api/auth/dto"
	models "farm_market/internal/api/auth/models"
	authsvc "farm_market/internal/api/auth/service"
	basehdl "farm_market/internal/api/base/handler"
	"farm_market/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RolePermissionHandler xử lý các request CRUD cho RolePermission
type RolePermissionHandler struct {
	*basehdl.BaseHandler[models.RolePermission, authdto.RolePermissionCreateInput, authdto.RolePermissionUpdateInput]
	rolePermissionService *authsvc.RolePermissionService
}

// NewRolePermissionHandler tạo instance mới của RolePermissionHandler
func NewRolePermissionHandler() (*RolePermissionHandler, error) {
	rolePermissionService, err := authsvc.NewRolePermissionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create role permission service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.RolePermission, authdto.RolePermissionCreateInput, authdto.RolePermissionUpdateInput](rolePermissionService)
	return &RolePermissionHandler{
		BaseHandler:           baseHandler,
		rolePermissionService: rolePermissionService,
	}, nil
}

// HandleUpdateRolePermissions thay toàn bộ danh sách quyền của một vai trò.
// Các bản ghi cũ bị xóa và thay bằng danh sách mới trong cùng một thao tác.
func (h *RolePermissionHandler) HandleUpdateRolePermissions(c fiber.Ctx) error {
	var input authdto.UpdateRolePermissionsInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	roleID, err := primitive.ObjectIDFromHex(input.RoleID)
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "roleId không đúng định dạng", common.StatusBadRequest, err))
		return nil
	}

	// Lấy user đang thực hiện để ghi nhận người cấp quyền
	userIDStr, _ := c.Locals("user_id").(string)
	createdBy, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuth, "User not authenticated", common.StatusUnauthorized, err))
		return nil
	}

	result, err := h.rolePermissionService.UpdateRolePermissions(c.Context(), roleID, input.PermissionIDs, input.Scope, createdBy)
	h.HandleResponse(c, result, err)
	return nil
}
