package authdto

// UserCreateInput đầu vào tạo người dùng (CRUD).
type UserCreateInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// UserRegisterInput đầu vào đăng ký tài khoản.
type UserRegisterInput struct {
	Name     string `json:"name" validate:"required,no_xss"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strong_password"`
	Phone    string `json:"phone"`
	Hwid     string `json:"hwid" validate:"required"`
}

// UserLoginInput đầu vào đăng nhập bằng email + mật khẩu.
type UserLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Hwid     string `json:"hwid" validate:"required"`
}

// UserLogoutInput đầu vào đăng xuất người dùng.
type UserLogoutInput struct {
	Hwid string `json:"hwid" validate:"required"`
}

// UserChangeInfoInput đầu vào thay đổi thông tin người dùng.
type UserChangeInfoInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// UserChangePasswordInput đầu vào đổi mật khẩu.
type UserChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,strong_password"`
}

// SetRoleInput đầu vào gán role cho người dùng theo email.
type SetRoleInput struct {
	Email  string `json:"email" validate:"required,email"`
	RoleID string `json:"roleId" validate:"required,object_id"`
}

// BlockUserInput đầu vào khóa người dùng.
type BlockUserInput struct {
	Email string `json:"email" validate:"required"`
	Note  string `json:"note" validate:"required"`
}

// UnBlockUserInput đầu vào mở khóa người dùng.
type UnBlockUserInput struct {
	Email string `json:"email" validate:"required"`
}
