package authdto

// UserCreateInput đầu vào tạo người dùng (CRUD).
type UserCreateInput struct {
	Name           string   `json:"name" validate:"required,no_xss"`
	Email          string   `json:"email" validate:"required,email"`
	Password       string   `json:"password" validate:"required,min=6"`
	Role           string   `json:"role" validate:"omitempty,oneof=admin manager expert advisor supervisor"`
	StandardAccess []string `json:"standardAccess" transform:"strarr_objectid,optional"`
	CriteriaAccess []string `json:"criteriaAccess" transform:"strarr_objectid,optional"`
}

// UserUpdateInput đầu vào cập nhật người dùng (CRUD).
type UserUpdateInput struct {
	Name           string   `json:"name" validate:"omitempty,no_xss"`
	Role           string   `json:"role" validate:"omitempty,oneof=admin manager expert advisor supervisor"`
	StandardAccess []string `json:"standardAccess" transform:"strarr_objectid,optional"`
	CriteriaAccess []string `json:"criteriaAccess" transform:"strarr_objectid,optional"`
}

// UserLoginInput đầu vào đăng nhập bằng email + mật khẩu.
type UserLoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserChangePasswordInput đầu vào đổi mật khẩu.
type UserChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
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
