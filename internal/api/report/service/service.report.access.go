package reportsvc

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "edu_accredit/internal/api/auth/models"
	models "edu_accredit/internal/api/report/models"
)

// Bộ kiểm tra quyền trên báo cáo: các hàm thuần, không side effect, không gọi database.
// Middleware phân quyền ở tầng HTTP gọi các hàm này trước mọi thao tác vòng đời;
// engine vòng đời không kiểm tra lại để việc phân quyền tập trung một chỗ.

// CanViewReport kiểm tra quyền xem báo cáo.
// Cho phép khi: admin, người tạo, báo cáo đã xuất bản, giám sát viên,
// hoặc danh sách tiêu chuẩn/tiêu chí được cấp của user chứa tiêu chuẩn/tiêu chí của báo cáo.
func CanViewReport(user *authmodels.User, report *models.Report) bool {
	if user.IsAdmin() || report.CreatedBy == user.ID {
		return true
	}
	if report.Status == models.ReportStatusPublished {
		return true
	}
	if user.Role == authmodels.RoleSupervisor {
		return true
	}
	if !report.StandardID.IsZero() && containsObjectID(user.StandardAccess, report.StandardID) {
		return true
	}
	if !report.CriteriaID.IsZero() && containsObjectID(user.CriteriaAccess, report.CriteriaID) {
		return true
	}
	return false
}

// CanEditReport kiểm tra quyền sửa nội dung báo cáo.
// Chỉ admin và người tạo được sửa; mọi vai trò khác, kể cả chuyên gia được cấp
// quyền bình luận, đều không được sửa.
func CanEditReport(user *authmodels.User, report *models.Report) bool {
	return user.IsAdmin() || report.CreatedBy == user.ID
}

// CanCommentReport kiểm tra quyền bình luận trên báo cáo.
// Cho phép khi: admin, người tạo, chuyên gia được gán với canComment,
// hoặc cố vấn được gán với canComment.
func CanCommentReport(user *authmodels.User, report *models.Report) bool {
	if user.IsAdmin() || report.CreatedBy == user.ID {
		return true
	}
	for _, grant := range report.AccessControl.AssignedExperts {
		if grant.ExpertID == user.ID && grant.CanComment {
			return true
		}
	}
	for _, grant := range report.AccessControl.Advisors {
		if grant.AdvisorID == user.ID && grant.CanComment {
			return true
		}
	}
	return false
}

// CanEvaluateReport kiểm tra quyền chấm điểm báo cáo.
// Cho phép khi: admin, người tạo, hoặc chuyên gia được gán với canEvaluate.
// Cố vấn không bao giờ có quyền chấm điểm.
func CanEvaluateReport(user *authmodels.User, report *models.Report) bool {
	if user.IsAdmin() || report.CreatedBy == user.ID {
		return true
	}
	for _, grant := range report.AccessControl.AssignedExperts {
		if grant.ExpertID == user.ID && grant.CanEvaluate {
			return true
		}
	}
	return false
}

func containsObjectID(ids []primitive.ObjectID, target primitive.ObjectID) bool {
	for _, id := range ids {
		if id == target {
			return true
		}
	}
	return false
}
