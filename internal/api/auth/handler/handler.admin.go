package authhdl

import (
	"fmt"

	authdto "farm_market/internal/api/auth/dto"
	authsvc "farm_market/internal/api/auth/service"
	basehdl "farm_market/internal/api/base/handler"
	"farm_market/internal/api/initsvc"
	"farm_market/internal/api/middleware"
	"farm_market/internal/common"
	"farm_market/internal/global"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminHandler xử lý các request quản trị người dùng (gán role, khóa/mở khóa)
type AdminHandler struct {
	adminService *authsvc.AdminService
	userService  *authsvc.UserService
}

// NewAdminHandler tạo instance mới của AdminHandler
func NewAdminHandler() (*AdminHandler, error) {
	adminService, err := authsvc.NewAdminService()
	if err != nil {
		return nil, fmt.Errorf("failed to create admin service: %v", err)
	}
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	return &AdminHandler{
		adminService: adminService,
		userService:  userService,
	}, nil
}

// parseAndValidate parse body và validate input cho các handler admin
func parseAndValidate(c fiber.Ctx, input interface{}) error {
	if err := c.Bind().Body(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}
	return nil
}

// HandleSetRole gán một role cho người dùng theo email
func (h *AdminHandler) HandleSetRole(c fiber.Ctx) error {
	var input authdto.SetRoleInput
	if err := parseAndValidate(c, &input); err != nil {
		basehdl.WriteResponse(c, nil, err)
		return nil
	}

	roleID, err := primitive.ObjectIDFromHex(input.RoleID)
	if err != nil {
		basehdl.WriteResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "roleId không đúng định dạng", common.StatusBadRequest, err))
		return nil
	}

	result, err := h.adminService.SetRole(c.Context(), input.Email, roleID)
	if err == nil {
		// Role thay đổi, cache permission của user phải được làm mới
		middleware.GetAuthManager().InvalidateUserPermissions(result.UserID.Hex())
		logrus.WithFields(logrus.Fields{
			"email":   input.Email,
			"role_id": input.RoleID,
		}).Info("Admin: Gán role cho người dùng thành công")
	}
	basehdl.WriteResponse(c, result, err)
	return nil
}

// HandleBlockUser khóa tài khoản người dùng theo email
func (h *AdminHandler) HandleBlockUser(c fiber.Ctx) error {
	var input authdto.BlockUserInput
	if err := parseAndValidate(c, &input); err != nil {
		basehdl.WriteResponse(c, nil, err)
		return nil
	}

	user, err := h.adminService.BlockUser(c.Context(), input.Email, true, input.Note)
	if err == nil {
		sanitizeUser(user)
		logrus.WithFields(logrus.Fields{
			"email": input.Email,
			"note":  input.Note,
		}).Info("Admin: Khóa tài khoản người dùng")
	}
	basehdl.WriteResponse(c, user, err)
	return nil
}

// HandleUnBlockUser mở khóa tài khoản người dùng theo email
func (h *AdminHandler) HandleUnBlockUser(c fiber.Ctx) error {
	var input authdto.UnBlockUserInput
	if err := parseAndValidate(c, &input); err != nil {
		basehdl.WriteResponse(c, nil, err)
		return nil
	}

	user, err := h.adminService.UnBlockUser(c.Context(), input.Email)
	if err == nil {
		sanitizeUser(user)
		logrus.WithFields(logrus.Fields{
			"email": input.Email,
		}).Info("Admin: Mở khóa tài khoản người dùng")
	}
	basehdl.WriteResponse(c, user, err)
	return nil
}

// HandleAddAdministrator gán quyền Administrator cho một user theo id
// (route admin, yêu cầu permission Init.SetAdmin)
func (h *AdminHandler) HandleAddAdministrator(c fiber.Ctx) error {
	idStr := c.Params("id")
	userID, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		basehdl.WriteResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID người dùng không đúng định dạng", common.StatusBadRequest, err))
		return nil
	}

	initService, err := initsvc.NewInitService()
	if err != nil {
		basehdl.WriteResponse(c, nil, err)
		return nil
	}

	result, err := initService.SetAdministrator(userID)
	if err == nil {
		middleware.GetAuthManager().InvalidateUserPermissions(idStr)
		logrus.WithFields(logrus.Fields{"user_id": idStr}).Info("Admin: Gán quyền Administrator thành công")
	}
	basehdl.WriteResponse(c, result, err)
	return nil
}

// HandleSyncAdministratorPermissions đồng bộ lại toàn bộ permission cho role
// Administrator (gọi sau khi thêm permission mới vào hệ thống)
func (h *AdminHandler) HandleSyncAdministratorPermissions(c fiber.Ctx) error {
	initService, err := initsvc.NewInitService()
	if err != nil {
		basehdl.WriteResponse(c, nil, err)
		return nil
	}
	if err := initService.InitPermission(); err != nil {
		basehdl.WriteResponse(c, nil, err)
		return nil
	}
	err = initService.CheckPermissionForAdministrator()
	basehdl.WriteResponse(c, nil, err)
	return nil
}
