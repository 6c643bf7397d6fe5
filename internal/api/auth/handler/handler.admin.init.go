package authhdl

import (
	"fmt"

	basehdl "farm_market/internal/api/base/handler"
	"farm_market/internal/api/initsvc"
	"farm_market/internal/common"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InitHandler xử lý các request khởi tạo hệ thống (seed permission, role, admin).
// Các route init chỉ được đăng ký khi hệ thống CHƯA có Administrator nào.
type InitHandler struct {
	initService *initsvc.InitService
}

// NewInitHandler tạo instance mới của InitHandler
func NewInitHandler() (*InitHandler, error) {
	initService, err := initsvc.NewInitService()
	if err != nil {
		return nil, fmt.Errorf("failed to create init service: %v", err)
	}
	return &InitHandler{
		initService: initService,
	}, nil
}

// HandleSetAdministrator gán quyền Administrator cho một user theo id.
// Chỉ có tác dụng khi hệ thống chưa có Administrator (route bị ẩn sau đó).
func (h *InitHandler) HandleSetAdministrator(c fiber.Ctx) error {
	idStr := c.Params("id")
	userID, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		basehdl.WriteResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID người dùng không đúng định dạng", common.StatusBadRequest, err))
		return nil
	}

	hasAdmin, err := h.initService.HasAnyAdministrator()
	if err != nil {
		basehdl.WriteResponse(c, nil, err)
		return nil
	}
	if hasAdmin {
		basehdl.WriteResponse(c, nil, common.NewError(
			common.ErrCodeAuthRole,
			"Hệ thống đã có Administrator, không thể set qua route init",
			common.StatusForbidden,
			nil,
		))
		return nil
	}

	result, err := h.initService.SetAdministrator(userID)
	if err == nil {
		logrus.WithFields(logrus.Fields{"user_id": idStr}).Info("Init: Set Administrator thành công")
	}
	basehdl.WriteResponse(c, result, err)
	return nil
}

// HandleInitPermissions seed danh mục permission hệ thống
func (h *InitHandler) HandleInitPermissions(c fiber.Ctx) error {
	err := h.initService.InitPermission()
	basehdl.WriteResponse(c, nil, err)
	return nil
}

// HandleInitRoles seed các role mặc định và phân quyền tương ứng
func (h *InitHandler) HandleInitRoles(c fiber.Ctx) error {
	err := h.initService.InitRole()
	basehdl.WriteResponse(c, nil, err)
	return nil
}

// HandleInitAdminUser tạo tài khoản admin mặc định từ biến môi trường
func (h *InitHandler) HandleInitAdminUser(c fiber.Ctx) error {
	err := h.initService.InitAdminUser()
	basehdl.WriteResponse(c, nil, err)
	return nil
}

// HandleInitAll chạy toàn bộ quy trình khởi tạo theo thứ tự:
// permissions → roles → quyền Administrator → admin user mặc định.
func (h *InitHandler) HandleInitAll(c fiber.Ctx) error {
	if err := h.initService.InitPermission(); err != nil {
		basehdl.WriteResponse(c, nil, err)
		return nil
	}
	if err := h.initService.InitRole(); err != nil {
		basehdl.WriteResponse(c, nil, err)
		return nil
	}
	if err := h.initService.CheckPermissionForAdministrator(); err != nil {
		basehdl.WriteResponse(c, nil, err)
		return nil
	}
	if err := h.initService.InitAdminUser(); err != nil {
		basehdl.WriteResponse(c, nil, err)
		return nil
	}

	status, err := h.initService.GetInitStatus()
	basehdl.WriteResponse(c, status, err)
	return nil
}

// HandleInitStatus trả về trạng thái khởi tạo hiện tại của hệ thống
func (h *InitHandler) HandleInitStatus(c fiber.Ctx) error {
	status, err := h.initService.GetInitStatus()
	basehdl.WriteResponse(c, status, err)
	return nil
}
