// Package initsvc chứa InitService dùng để khởi tạo dữ liệu ban đầu
// (permissions, roles, admin user). Tách ra package riêng để tránh
// import cycle giữa auth/service và các service domain khác.
package initsvc

import (
	"context"
	"errors"
	"fmt"

	models "farm_market/internal/api/auth/models"
	authsvc "farm_market/internal/api/auth/service"
	basesvc "farm_market/internal/api/base/service"
	"farm_market/internal/common"
	"farm_market/internal/global"
	"farm_market/internal/logger"
	"farm_market/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InitService là cấu trúc chứa các phương thức khởi tạo dữ liệu ban đầu cho hệ thống
// Bao gồm khởi tạo người dùng, vai trò, quyền và các quan hệ giữa chúng
type InitService struct {
	userService           *authsvc.UserService           // Service xử lý người dùng
	roleService           *authsvc.RoleService           // Service xử lý vai trò
	permissionService     *authsvc.PermissionService     // Service xử lý quyền
	rolePermissionService *authsvc.RolePermissionService // Service xử lý quan hệ vai trò-quyền
	userRoleService       *authsvc.UserRoleService       // Service xử lý quan hệ người dùng-vai trò
}

// NewInitService tạo mới một đối tượng InitService
func NewInitService() (*InitService, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	roleService, err := authsvc.NewRoleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create role service: %v", err)
	}
	permissionService, err := authsvc.NewPermissionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create permission service: %v", err)
	}
	rolePermissionService, err := authsvc.NewRolePermissionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create role permission service: %v", err)
	}
	userRoleService, err := authsvc.NewUserRoleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user role service: %v", err)
	}

	// Đăng ký callback kiểm tra admin cho base service (tránh import cycle basesvc -> authsvc)
	authsvc.RegisterAdminCheck()

	return &InitService{
		userService:           userService,
		roleService:           roleService,
		permissionService:     permissionService,
		rolePermissionService: rolePermissionService,
		userRoleService:       userRoleService,
	}, nil
}

// InitialPermissions định nghĩa danh sách các quyền mặc định của hệ thống,
// chia theo module: Auth, Catalog, Farmer, Logistics, Market, Order, Delivery, Notification.
var InitialPermissions = []models.Permission{
	// ====================================  AUTH MODULE =============================================
	// Quản lý người dùng: Thêm, xem, sửa, xóa, khóa và phân quyền
	{Name: "User.Insert", Describe: "Quyền tạo người dùng", Group: "Auth", Category: "User"},
	{Name: "User.Read", Describe: "Quyền xem danh sách người dùng", Group: "Auth", Category: "User"},
	{Name: "User.Update", Describe: "Quyền cập nhật thông tin người dùng", Group: "Auth", Category: "User"},
	{Name: "User.Delete", Describe: "Quyền xóa người dùng", Group: "Auth", Category: "User"},
	{Name: "User.Block", Describe: "Quyền khóa/mở khóa người dùng", Group: "Auth", Category: "User"},
	{Name: "User.SetRole", Describe: "Quyền phân quyền cho người dùng", Group: "Auth", Category: "User"},

	// Quản lý vai trò: Thêm, xem, sửa, xóa vai trò
	{Name: "Role.Insert", Describe: "Quyền tạo vai trò", Group: "Auth", Category: "Role"},
	{Name: "Role.Read", Describe: "Quyền xem danh sách vai trò", Group: "Auth", Category: "Role"},
	{Name: "Role.Update", Describe: "Quyền cập nhật vai trò", Group: "Auth", Category: "Role"},
	{Name: "Role.Delete", Describe: "Quyền xóa vai trò", Group: "Auth", Category: "Role"},

	// Quản lý quyền: Thêm, xem, sửa, xóa quyền
	{Name: "Permission.Insert", Describe: "Quyền tạo quyền", Group: "Auth", Category: "Permission"},
	{Name: "Permission.Read", Describe: "Quyền xem danh sách quyền", Group: "Auth", Category: "Permission"},
	{Name: "Permission.Update", Describe: "Quyền cập nhật quyền", Group: "Auth", Category: "Permission"},
	{Name: "Permission.Delete", Describe: "Quyền xóa quyền", Group: "Auth", Category: "Permission"},

	// Quản lý phân quyền cho vai trò: Thêm, xem, sửa, xóa phân quyền
	{Name: "RolePermission.Insert", Describe: "Quyền tạo phân quyền cho vai trò", Group: "Auth", Category: "RolePermission"},
	{Name: "RolePermission.Read", Describe: "Quyền xem phân quyền của vai trò", Group: "Auth", Category: "RolePermission"},
	{Name: "RolePermission.Update", Describe: "Quyền cập nhật phân quyền của vai trò", Group: "Auth", Category: "RolePermission"},
	{Name: "RolePermission.Delete", Describe: "Quyền xóa phân quyền của vai trò", Group: "Auth", Category: "RolePermission"},

	// Quản lý phân vai trò cho người dùng: Thêm, xem, sửa, xóa phân vai trò
	{Name: "UserRole.Insert", Describe: "Quyền phân công vai trò cho người dùng", Group: "Auth", Category: "UserRole"},
	{Name: "UserRole.Read", Describe: "Quyền xem vai trò của người dùng", Group: "Auth", Category: "UserRole"},
	{Name: "UserRole.Update", Describe: "Quyền cập nhật vai trò của người dùng", Group: "Auth", Category: "UserRole"},
	{Name: "UserRole.Delete", Describe: "Quyền xóa vai trò của người dùng", Group: "Auth", Category: "UserRole"},

	// Quản lý khởi tạo hệ thống: Thiết lập administrator và đồng bộ quyền
	{Name: "Init.SetAdmin", Describe: "Quyền thiết lập administrator và đồng bộ quyền cho Administrator", Group: "Auth", Category: "Init"},

	// ==================================== CATALOG MODULE ===========================================
	// Quản lý mặt hàng: Thêm, xem, sửa, xóa
	{Name: "Item.Insert", Describe: "Quyền tạo mặt hàng", Group: "Catalog", Category: "Item"},
	{Name: "Item.Read", Describe: "Quyền xem danh sách mặt hàng", Group: "Catalog", Category: "Item"},
	{Name: "Item.Update", Describe: "Quyền cập nhật mặt hàng", Group: "Catalog", Category: "Item"},
	{Name: "Item.Delete", Describe: "Quyền xóa mặt hàng", Group: "Catalog", Category: "Item"},

	// Quản lý tiêu chuẩn chất lượng: Thêm, xem, sửa, xóa
	{Name: "QualityStandard.Insert", Describe: "Quyền tạo tiêu chuẩn chất lượng", Group: "Catalog", Category: "QualityStandard"},
	{Name: "QualityStandard.Read", Describe: "Quyền xem danh sách tiêu chuẩn chất lượng", Group: "Catalog", Category: "QualityStandard"},
	{Name: "QualityStandard.Update", Describe: "Quyền cập nhật tiêu chuẩn chất lượng", Group: "Catalog", Category: "QualityStandard"},
	{Name: "QualityStandard.Delete", Describe: "Quyền xóa tiêu chuẩn chất lượng", Group: "Catalog", Category: "QualityStandard"},

	// ==================================== FARMER MODULE ===========================================
	// Quản lý đơn giao nông sản: CRUD và các bước chuyển trạng thái
	{Name: "FarmerOrder.Insert", Describe: "Quyền tạo đơn giao nông sản", Group: "Farmer", Category: "FarmerOrder"},
	{Name: "FarmerOrder.Read", Describe: "Quyền xem danh sách đơn giao nông sản", Group: "Farmer", Category: "FarmerOrder"},
	{Name: "FarmerOrder.Update", Describe: "Quyền cập nhật đơn giao nông sản", Group: "Farmer", Category: "FarmerOrder"},
	{Name: "FarmerOrder.Delete", Describe: "Quyền xóa đơn giao nông sản", Group: "Farmer", Category: "FarmerOrder"},
	{Name: "FarmerOrder.Submit", Describe: "Quyền nộp đơn giao nông sản", Group: "Farmer", Category: "FarmerOrder"},
	{Name: "FarmerOrder.Accept", Describe: "Quyền duyệt đơn giao nông sản", Group: "Farmer", Category: "FarmerOrder"},
	{Name: "FarmerOrder.Reject", Describe: "Quyền từ chối đơn giao nông sản", Group: "Farmer", Category: "FarmerOrder"},
	{Name: "FarmerOrder.Fulfill", Describe: "Quyền xác nhận hoàn tất giao nông sản", Group: "Farmer", Category: "FarmerOrder"},

	// ==================================== LOGISTICS MODULE ===========================================
	// Quản lý trung tâm logistics: Thêm, xem, sửa, xóa
	{Name: "LogisticsCenter.Insert", Describe: "Quyền tạo trung tâm logistics", Group: "Logistics", Category: "LogisticsCenter"},
	{Name: "LogisticsCenter.Read", Describe: "Quyền xem danh sách trung tâm logistics", Group: "Logistics", Category: "LogisticsCenter"},
	{Name: "LogisticsCenter.Update", Describe: "Quyền cập nhật trung tâm logistics", Group: "Logistics", Category: "LogisticsCenter"},
	{Name: "LogisticsCenter.Delete", Describe: "Quyền xóa trung tâm logistics", Group: "Logistics", Category: "LogisticsCenter"},

	// Quản lý snapshot độ đầy kệ hàng: Thêm, xem, sửa, xóa
	{Name: "ShelfCrowd.Insert", Describe: "Quyền tạo snapshot độ đầy kệ", Group: "Logistics", Category: "ShelfCrowd"},
	{Name: "ShelfCrowd.Read", Describe: "Quyền xem snapshot độ đầy kệ", Group: "Logistics", Category: "ShelfCrowd"},
	{Name: "ShelfCrowd.Update", Describe: "Quyền cập nhật snapshot độ đầy kệ", Group: "Logistics", Category: "ShelfCrowd"},
	{Name: "ShelfCrowd.Delete", Describe: "Quyền xóa snapshot độ đầy kệ", Group: "Logistics", Category: "ShelfCrowd"},

	// Quản lý phân bổ container: Thêm, xem, sửa, xóa
	{Name: "ContainerAssignment.Insert", Describe: "Quyền tạo phân bổ container", Group: "Logistics", Category: "ContainerAssignment"},
	{Name: "ContainerAssignment.Read", Describe: "Quyền xem danh sách phân bổ container", Group: "Logistics", Category: "ContainerAssignment"},
	{Name: "ContainerAssignment.Update", Describe: "Quyền cập nhật phân bổ container", Group: "Logistics", Category: "ContainerAssignment"},
	{Name: "ContainerAssignment.Delete", Describe: "Quyền xóa phân bổ container", Group: "Logistics", Category: "ContainerAssignment"},

	// Quản lý snapshot tồn kho bán (AMS): xem và refresh theo yêu cầu
	{Name: "AmsSnapshot.Read", Describe: "Quyền xem snapshot tồn kho bán", Group: "Logistics", Category: "AmsSnapshot"},
	{Name: "AmsSnapshot.Refresh", Describe: "Quyền refresh snapshot tồn kho bán theo yêu cầu", Group: "Logistics", Category: "AmsSnapshot"},

	// ==================================== ORDER MODULE ===========================================
	// Quản lý đơn hàng khách: xem và các bước chuyển trạng thái. Đơn chỉ được
	// tạo qua checkout giỏ hàng và không có route sửa/xóa tự do.
	{Name: "Order.Read", Describe: "Quyền xem danh sách đơn hàng", Group: "Order", Category: "Order"},
	{Name: "Order.ReadOwn", Describe: "Quyền xem đơn hàng của chính mình", Group: "Order", Category: "Order"},
	{Name: "Order.Confirm", Describe: "Quyền xác nhận đơn hàng", Group: "Order", Category: "Order"},
	{Name: "Order.Cancel", Describe: "Quyền hủy đơn hàng", Group: "Order", Category: "Order"},
	{Name: "Order.Pick", Describe: "Quyền xác nhận đã soạn hàng", Group: "Order", Category: "Order"},
	{Name: "Order.Deliver", Describe: "Quyền cập nhật trạng thái giao hàng", Group: "Order", Category: "Order"},

	// ==================================== DELIVERY MODULE ===========================================
	// Quản lý ca giao hàng: Thêm, xem, sửa, xóa và phân công
	{Name: "DeliveryShift.Insert", Describe: "Quyền tạo ca giao hàng", Group: "Delivery", Category: "DeliveryShift"},
	{Name: "DeliveryShift.Read", Describe: "Quyền xem danh sách ca giao hàng", Group: "Delivery", Category: "DeliveryShift"},
	{Name: "DeliveryShift.Update", Describe: "Quyền cập nhật ca giao hàng", Group: "Delivery", Category: "DeliveryShift"},
	{Name: "DeliveryShift.Delete", Describe: "Quyền xóa ca giao hàng", Group: "Delivery", Category: "DeliveryShift"},
	{Name: "DeliveryShift.Assign", Describe: "Quyền phân công người giao hàng vào ca", Group: "Delivery", Category: "DeliveryShift"},

	// Quản lý lịch khả dụng của người giao hàng
	{Name: "DelivererSchedule.Read", Describe: "Quyền xem lịch khả dụng của người giao hàng", Group: "Delivery", Category: "DelivererSchedule"},
	{Name: "DelivererSchedule.Update", Describe: "Quyền cập nhật lịch khả dụng của người giao hàng", Group: "Delivery", Category: "DelivererSchedule"},

	// ==================================== NOTIFICATION MODULE ===========================================
	// Lịch sử thông báo: chỉ xem (hệ thống tự ghi)
	{Name: "NotificationHistory.Read", Describe: "Quyền xem lịch sử thông báo", Group: "Notification", Category: "NotificationHistory"},
}

// InitialRoles định nghĩa các vai trò mặc định của hệ thống.
var InitialRoles = []models.Role{
	{Name: "Administrator", Describe: "Quản trị hệ thống, có toàn bộ quyền"},
	{Name: "Farmer", Describe: "Nông dân: tạo và nộp đơn giao nông sản"},
	{Name: "LogisticsManager", Describe: "Quản lý trung tâm logistics: duyệt đơn, xếp container, quản lý kệ và tồn kho bán"},
	{Name: "CSManager", Describe: "Quản lý chăm sóc khách hàng: quản lý mặt hàng và đơn hàng khách"},
	{Name: "Deliverer", Describe: "Người giao hàng: đăng ký lịch và cập nhật trạng thái giao"},
	{Name: "Customer", Describe: "Khách hàng: xem chợ, giỏ hàng và đơn hàng của mình"},
}

// initialRolePermissions ánh xạ vai trò mặc định -> danh sách quyền được cấp khi init.
// Administrator được cấp toàn bộ quyền qua CheckPermissionForAdministrator.
var initialRolePermissions = map[string][]string{
	"Farmer": {
		"Item.Read", "QualityStandard.Read", "LogisticsCenter.Read",
		"FarmerOrder.Insert", "FarmerOrder.Read", "FarmerOrder.Update", "FarmerOrder.Delete", "FarmerOrder.Submit",
	},
	"LogisticsManager": {
		"Item.Read", "QualityStandard.Read", "LogisticsCenter.Read", "LogisticsCenter.Update",
		"FarmerOrder.Read", "FarmerOrder.Accept", "FarmerOrder.Reject", "FarmerOrder.Fulfill",
		"ShelfCrowd.Insert", "ShelfCrowd.Read", "ShelfCrowd.Update", "ShelfCrowd.Delete",
		"ContainerAssignment.Insert", "ContainerAssignment.Read", "ContainerAssignment.Update", "ContainerAssignment.Delete",
		"AmsSnapshot.Read", "AmsSnapshot.Refresh",
		"Order.Read", "Order.Pick",
		"DeliveryShift.Read",
	},
	"CSManager": {
		"User.Read",
		"Item.Insert", "Item.Read", "Item.Update", "Item.Delete",
		"QualityStandard.Insert", "QualityStandard.Read", "QualityStandard.Update", "QualityStandard.Delete",
		"Order.Read", "Order.Confirm", "Order.Cancel",
		"NotificationHistory.Read",
	},
	"Deliverer": {
		"DeliveryShift.Read",
		"DelivererSchedule.Read", "DelivererSchedule.Update",
		"Order.Read", "Order.Deliver",
	},
	"Customer": {
		"Item.Read", "LogisticsCenter.Read", "AmsSnapshot.Read", "Order.ReadOwn",
	},
}

// InitPermission khởi tạo các quyền mặc định cho hệ thống.
// Chỉ tạo mới các quyền chưa tồn tại trong database.
func (h *InitService) InitPermission() error {
	for _, permission := range InitialPermissions {
		filter := bson.M{"name": permission.Name}
		_, err := h.permissionService.BaseServiceMongoImpl.FindOne(context.TODO(), filter, nil)

		// Bỏ qua nếu có lỗi khác ErrNotFound
		if err != nil && !errors.Is(err, common.ErrNotFound) {
			continue
		}

		if errors.Is(err, common.ErrNotFound) {
			// Permissions tạo trong init là dữ liệu hệ thống
			permission.IsSystem = true
			initCtx := basesvc.WithSystemDataInsertAllowed(context.TODO())
			_, err = h.permissionService.BaseServiceMongoImpl.InsertOne(initCtx, permission)
			if err != nil {
				return fmt.Errorf("failed to insert permission %s: %v", permission.Name, err)
			}
		}
	}
	return nil
}

// InitRole khởi tạo các vai trò mặc định và cấp quyền tương ứng.
func (h *InitService) InitRole() error {
	log := logger.GetAppLogger()
	initCtx := basesvc.WithSystemDataInsertAllowed(context.TODO())

	for _, role := range InitialRoles {
		filter := bson.M{"name": role.Name}
		existing, err := h.roleService.BaseServiceMongoImpl.FindOne(initCtx, filter, nil)
		if err != nil && !errors.Is(err, common.ErrNotFound) {
			return fmt.Errorf("failed to check role %s: %v", role.Name, err)
		}

		var roleID primitive.ObjectID
		if errors.Is(err, common.ErrNotFound) {
			role.IsSystem = true
			created, err := h.roleService.BaseServiceMongoImpl.InsertOne(initCtx, role)
			if err != nil {
				return fmt.Errorf("failed to insert role %s: %v", role.Name, err)
			}
			roleID = created.ID
			log.Infof("Đã tạo role mặc định: %s", role.Name)
		} else {
			roleID = existing.ID
		}

		// Cấp các quyền còn thiếu cho role (không ghi đè phân quyền admin tùy chỉnh)
		for _, permName := range initialRolePermissions[role.Name] {
			perm, err := h.permissionService.BaseServiceMongoImpl.FindOne(initCtx, bson.M{"name": permName}, nil)
			if err != nil {
				log.Warnf("Bỏ qua quyền %s cho role %s: %v", permName, role.Name, err)
				continue
			}
			rpFilter := bson.M{"roleId": roleID, "permissionId": perm.ID}
			exists, err := h.rolePermissionService.BaseServiceMongoImpl.DocumentExists(initCtx, rpFilter)
			if err != nil {
				return fmt.Errorf("failed to check role permission %s/%s: %v", role.Name, permName, err)
			}
			if !exists {
				_, err = h.rolePermissionService.BaseServiceMongoImpl.InsertOne(initCtx, models.RolePermission{
					RoleID:       roleID,
					PermissionID: perm.ID,
				})
				if err != nil {
					return fmt.Errorf("failed to grant %s to role %s: %v", permName, role.Name, err)
				}
			}
		}
	}
	return nil
}

// CheckPermissionForAdministrator đảm bảo role Administrator có đủ toàn bộ quyền hiện có.
func (h *InitService) CheckPermissionForAdministrator() error {
	initCtx := basesvc.WithSystemDataInsertAllowed(context.TODO())

	adminRole, err := h.roleService.BaseServiceMongoImpl.FindOne(initCtx, bson.M{"name": authsvc.AdministratorRoleName}, nil)
	if err != nil {
		return fmt.Errorf("failed to find Administrator role: %v", err)
	}

	permissions, err := h.permissionService.BaseServiceMongoImpl.Find(initCtx, bson.M{}, nil)
	if err != nil {
		return fmt.Errorf("failed to list permissions: %v", err)
	}

	for _, perm := range permissions {
		filter := bson.M{"roleId": adminRole.ID, "permissionId": perm.ID}
		exists, err := h.rolePermissionService.BaseServiceMongoImpl.DocumentExists(initCtx, filter)
		if err != nil {
			return fmt.Errorf("failed to check admin permission %s: %v", perm.Name, err)
		}
		if !exists {
			_, err = h.rolePermissionService.BaseServiceMongoImpl.InsertOne(initCtx, models.RolePermission{
				RoleID:       adminRole.ID,
				PermissionID: perm.ID,
			})
			if err != nil {
				return fmt.Errorf("failed to grant %s to Administrator: %v", perm.Name, err)
			}
		}
	}
	return nil
}

// HasAnyAdministrator kiểm tra hệ thống đã có ít nhất một administrator chưa.
func (h *InitService) HasAnyAdministrator() (bool, error) {
	ctx := context.TODO()
	adminRole, err := h.roleService.BaseServiceMongoImpl.FindOne(ctx, bson.M{"name": authsvc.AdministratorRoleName}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	count, err := h.userRoleService.BaseServiceMongoImpl.CountDocuments(ctx, bson.M{"roleId": adminRole.ID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// SetAdministrator gán vai trò Administrator cho user theo ID.
// Nếu user đã là administrator thì trả về bản ghi hiện có.
func (h *InitService) SetAdministrator(userID primitive.ObjectID) (*models.UserRole, error) {
	ctx := context.TODO()

	if _, err := h.userService.BaseServiceMongoImpl.FindOneById(ctx, userID); err != nil {
		return nil, err
	}
	adminRole, err := h.roleService.BaseServiceMongoImpl.FindOne(ctx, bson.M{"name": authsvc.AdministratorRoleName}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to find Administrator role: %v", err)
	}

	filter := bson.M{"userId": userID, "roleId": adminRole.ID}
	existing, err := h.userRoleService.BaseServiceMongoImpl.FindOne(ctx, filter, nil)
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	created, err := h.userRoleService.BaseServiceMongoImpl.InsertOne(ctx, models.UserRole{
		UserID: userID,
		RoleID: adminRole.ID,
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// InitAdminUser khởi tạo tài khoản admin từ cấu hình môi trường
// (ADMIN_EMAIL + ADMIN_PASSWORD). Bỏ qua khi không cấu hình mật khẩu.
func (h *InitService) InitAdminUser() error {
	log := logger.GetAppLogger()
	cfg := global.ServerConfig
	if cfg.AdminPassword == "" {
		log.Info("ADMIN_PASSWORD trống, bỏ qua khởi tạo admin user")
		return nil
	}

	ctx := context.TODO()
	user, err := h.userService.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": cfg.AdminEmail}, nil)
	if errors.Is(err, common.ErrNotFound) {
		hashed, hashErr := utility.HashPassword(cfg.AdminPassword)
		if hashErr != nil {
			return fmt.Errorf("failed to hash admin password: %v", hashErr)
		}
		initCtx := basesvc.WithSystemDataInsertAllowed(ctx)
		user, err = h.userService.BaseServiceMongoImpl.InsertOne(initCtx, models.User{
			Name:     "Administrator",
			Email:    cfg.AdminEmail,
			Password: hashed,
			Tokens:   []models.Token{},
		})
		if err != nil {
			return fmt.Errorf("failed to create admin user: %v", err)
		}
		log.Infof("Đã tạo admin user: %s", cfg.AdminEmail)
	} else if err != nil {
		return fmt.Errorf("failed to check admin user: %v", err)
	}

	if _, err := h.SetAdministrator(user.ID); err != nil {
		return fmt.Errorf("failed to set administrator: %v", err)
	}
	return nil
}

// GetInitStatus trả về trạng thái khởi tạo hệ thống.
func (h *InitService) GetInitStatus() (map[string]interface{}, error) {
	ctx := context.TODO()

	permCount, err := h.permissionService.BaseServiceMongoImpl.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	roleCount, err := h.roleService.BaseServiceMongoImpl.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	hasAdmin, err := h.HasAnyAdministrator()
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"permissions":      permCount,
		"roles":            roleCount,
		"hasAdministrator": hasAdmin,
		"initialized":      permCount > 0 && roleCount > 0 && hasAdmin,
	}, nil
}
