package authdto

// PermissionCreateInput đầu vào tạo quyền.
type PermissionCreateInput struct {
	Name     string `json:"name" validate:"required"`
	Describe string `json:"describe"`
	Category string `json:"category"`
	Group    string `json:"group"`
}

// PermissionUpdateInput đầu vào cập nhật quyền.
type PermissionUpdateInput struct {
	Describe string `json:"describe"`
	Category string `json:"category"`
	Group    string `json:"group"`
}
