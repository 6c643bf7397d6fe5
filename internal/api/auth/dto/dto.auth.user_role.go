package authdto

// UserRoleCreateInput đầu vào gán vai trò cho người dùng.
type UserRoleCreateInput struct {
	UserID string `json:"userId" validate:"required,object_id" transform:"str_objectid,map=UserID"`
	RoleID string `json:"roleId" validate:"required,object_id" transform:"str_objectid,map=RoleID"`
}

// UserRoleUpdateInput đầu vào cập nhật vai trò người dùng.
type UserRoleUpdateInput struct {
	RoleID string `json:"roleId" validate:"omitempty,object_id" transform:"str_objectid,map=RoleID,optional"`
}

// UpdateUserRolesInput đầu vào thay toàn bộ vai trò của một người dùng.
type UpdateUserRolesInput struct {
	UserID  string   `json:"userId" validate:"required,object_id"`
	RoleIDs []string `json:"roleIds" validate:"required"`
}
