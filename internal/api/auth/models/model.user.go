// Package models - model người dùng (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các role trong hệ thống kiểm định.
// - admin: quản trị viên, toàn quyền
// - manager: cán bộ quản lý, tạo yêu cầu viết báo cáo
// - expert: chuyên gia viết báo cáo (người được giao yêu cầu)
// - advisor: cố vấn, được gán vào báo cáo để góp ý
// - supervisor: giám sát, xem được mọi báo cáo
const (
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleExpert     = "expert"
	RoleAdvisor    = "advisor"
	RoleSupervisor = "supervisor"
)

// User định nghĩa mô hình người dùng.
// Token chứa token xác thực mới nhất của người dùng (cập nhật mỗi lần login).
// StandardAccess/CriteriaAccess là danh sách tiêu chuẩn/tiêu chí user được cấp quyền xem báo cáo.
type User struct {
	_Relationships struct{}             `relationship:"collection:report_requests,field:assignedTo,message:Không thể xóa user vì có %d yêu cầu viết báo cáo đang giao cho user này. Vui lòng thu hồi các yêu cầu trước."`
	ID             primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string               `json:"name" bson:"name"`
	Email          string               `json:"email" bson:"email" index:"unique" validate:"required,email"`
	Password       string               `json:"-" bson:"password,omitempty"`
	Role           string               `json:"role" bson:"role" default:"expert"`
	StandardAccess []primitive.ObjectID `json:"standardAccess" bson:"standardAccess"`
	CriteriaAccess []primitive.ObjectID `json:"criteriaAccess" bson:"criteriaAccess"`
	Token          string               `json:"token,omitempty" bson:"token,omitempty"`
	IsBlock        bool                 `json:"-" bson:"isBlock"`
	BlockNote      string               `json:"-" bson:"blockNote"`
	LastLoginAt    int64                `json:"lastLoginAt,omitempty" bson:"lastLoginAt,omitempty"`
	CreatedAt      int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64                `json:"updatedAt" bson:"updatedAt"`
}

// IsAdmin kiểm tra user có phải admin không
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasRole kiểm tra role của user có nằm trong danh sách roles không.
// Danh sách rỗng nghĩa là chấp nhận mọi role.
func (u *User) HasRole(roles ...string) bool {
	if len(roles) == 0 {
		return true
	}
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}
