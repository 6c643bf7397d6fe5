package authdto

// RolePermissionCreateInput đầu vào gán quyền cho vai trò.
type RolePermissionCreateInput struct {
	RoleID       string `json:"roleId" validate:"required,object_id" transform:"str_objectid,map=RoleID"`
	PermissionID string `json:"permissionId" validate:"required,object_id" transform:"str_objectid,map=PermissionID"`
	Scope        byte   `json:"scope"`
}

// RolePermissionUpdateInput đầu vào cập nhật scope của phân quyền.
type RolePermissionUpdateInput struct {
	Scope byte `json:"scope"`
}

// UpdateRolePermissionsInput đầu vào thay toàn bộ quyền của một vai trò.
type UpdateRolePermissionsInput struct {
	RoleID        string   `json:"roleId" validate:"required,object_id"`
	PermissionIDs []string `json:"permissionIds" validate:"required"`
	Scope         byte     `json:"scope"`
}
