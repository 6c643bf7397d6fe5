// Package initsvc - Test dữ liệu seed quyền/vai trò mặc định.
package initsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// catalogNames trả về set tên quyền có trong catalog InitialPermissions.
func catalogNames() map[string]bool {
	names := make(map[string]bool, len(InitialPermissions))
	for _, p := range InitialPermissions {
		names[p.Name] = true
	}
	return names
}

func TestInitialRolePermissionsDeclaredInCatalog(t *testing.T) {
	names := catalogNames()
	for role, perms := range initialRolePermissions {
		for _, perm := range perms {
			assert.Truef(t, names[perm], "vai trò %s được cấp quyền %s không có trong catalog", role, perm)
		}
	}
}

func TestInitialRoleNamesDeclared(t *testing.T) {
	roleNames := make(map[string]bool, len(InitialRoles))
	for _, r := range InitialRoles {
		roleNames[r.Name] = true
	}
	for role := range initialRolePermissions {
		assert.Truef(t, roleNames[role], "vai trò %s có danh sách quyền nhưng không nằm trong InitialRoles", role)
	}
}

func TestCustomerOnlyReadsOwnOrders(t *testing.T) {
	customer := initialRolePermissions["Customer"]

	// Khách hàng chỉ xem đơn của chính mình, không được quyền duyệt mọi đơn
	// qua các route CRUD (Order.Read)
	assert.Contains(t, customer, "Order.ReadOwn")
	assert.NotContains(t, customer, "Order.Read", "khách hàng không được cấp quyền xem mọi đơn hàng")

	// Các vai trò vận hành vẫn giữ Order.Read
	assert.Contains(t, initialRolePermissions["CSManager"], "Order.Read")
	assert.Contains(t, initialRolePermissions["LogisticsManager"], "Order.Read")
	assert.Contains(t, initialRolePermissions["Deliverer"], "Order.Read")
}

func TestOrderWritePermissionsNotSeeded(t *testing.T) {
	// Đơn hàng khách chỉ được tạo qua checkout và đổi trạng thái qua các nghiệp
	// vụ confirm/cancel/pick/deliver; không có route CRUD ghi nên không seed
	// các quyền ghi tương ứng
	names := catalogNames()
	for _, perm := range []string{"Order.Insert", "Order.Update", "Order.Delete"} {
		assert.Falsef(t, names[perm], "%s không có route nên không được seed", perm)
		for role, perms := range initialRolePermissions {
			assert.NotContainsf(t, perms, perm, "vai trò %s không được cấp %s", role, perm)
		}
	}
}
