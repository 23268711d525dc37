// Package reportsvc - Test bộ kiểm tra quyền trên báo cáo (canView/canEdit/canComment/canEvaluate).
package reportsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "edu_accredit/internal/api/auth/models"
	models "edu_accredit/internal/api/report/models"
)

func newTestUser(role string) *authmodels.User {
	return &authmodels.User{ID: primitive.NewObjectID(), Role: role}
}

func TestCanViewReport_AdminVaNguoiTao(t *testing.T) {
	admin := newTestUser(authmodels.RoleAdmin)
	creator := newTestUser(authmodels.RoleExpert)
	report := &models.Report{Status: models.ReportStatusDraft, CreatedBy: creator.ID}

	if !CanViewReport(admin, report) {
		t.Error("Admin phải xem được báo cáo nháp của người khác")
	}
	if !CanViewReport(creator, report) {
		t.Error("Người tạo phải xem được báo cáo nháp của mình")
	}
}

func TestCanViewReport_DaXuatBan_AiCungXemDuoc(t *testing.T) {
	expert := newTestUser(authmodels.RoleExpert)
	report := &models.Report{Status: models.ReportStatusPublished, CreatedBy: primitive.NewObjectID()}

	if !CanViewReport(expert, report) {
		t.Error("Báo cáo đã xuất bản phải xem được bởi mọi người dùng đăng nhập")
	}
}

func TestCanViewReport_GiamSatVien(t *testing.T) {
	supervisor := newTestUser(authmodels.RoleSupervisor)
	report := &models.Report{Status: models.ReportStatusDraft, CreatedBy: primitive.NewObjectID()}

	if !CanViewReport(supervisor, report) {
		t.Error("Giám sát viên phải xem được báo cáo ở mọi trạng thái")
	}
}

func TestCanViewReport_TheoQuyenTieuChuanTieuChi(t *testing.T) {
	standardID := primitive.NewObjectID()
	criteriaID := primitive.NewObjectID()
	report := &models.Report{
		Status:     models.ReportStatusDraft,
		CreatedBy:  primitive.NewObjectID(),
		StandardID: standardID,
		CriteriaID: criteriaID,
	}

	userWithStandard := newTestUser(authmodels.RoleExpert)
	userWithStandard.StandardAccess = []primitive.ObjectID{standardID}
	if !CanViewReport(userWithStandard, report) {
		t.Error("User được cấp quyền tiêu chuẩn của báo cáo phải xem được")
	}

	userWithCriteria := newTestUser(authmodels.RoleExpert)
	userWithCriteria.CriteriaAccess = []primitive.ObjectID{criteriaID}
	if !CanViewReport(userWithCriteria, report) {
		t.Error("User được cấp quyền tiêu chí của báo cáo phải xem được")
	}

	outsider := newTestUser(authmodels.RoleExpert)
	outsider.StandardAccess = []primitive.ObjectID{primitive.NewObjectID()}
	if CanViewReport(outsider, report) {
		t.Error("User không liên quan không được xem báo cáo nháp")
	}
}

func TestCanEditReport_ChiAdminVaNguoiTao(t *testing.T) {
	creator := newTestUser(authmodels.RoleExpert)
	report := &models.Report{Status: models.ReportStatusDraft, CreatedBy: creator.ID}

	if !CanEditReport(newTestUser(authmodels.RoleAdmin), report) {
		t.Error("Admin phải sửa được báo cáo")
	}
	if !CanEditReport(creator, report) {
		t.Error("Người tạo phải sửa được báo cáo của mình")
	}
	if CanEditReport(newTestUser(authmodels.RoleManager), report) {
		t.Error("Manager không phải người tạo không được sửa báo cáo")
	}
	if CanEditReport(newTestUser(authmodels.RoleSupervisor), report) {
		t.Error("Giám sát viên không được sửa báo cáo")
	}
}

func TestCanEditReport_ChuyenGiaDuocCapQuyenBinhLuan_VanKhongDuocSua(t *testing.T) {
	expert := newTestUser(authmodels.RoleExpert)
	report := &models.Report{
		Status:    models.ReportStatusDraft,
		CreatedBy: primitive.NewObjectID(),
		AccessControl: models.ReportAccessControl{
			AssignedExperts: []models.ExpertGrant{
				{ExpertID: expert.ID, CanComment: true, CanEvaluate: true},
			},
		},
	}

	if CanEditReport(expert, report) {
		t.Error("Chuyên gia được gán canComment/canEvaluate vẫn không được sửa nội dung")
	}
}

func TestCanCommentReport(t *testing.T) {
	expert := newTestUser(authmodels.RoleExpert)
	advisor := newTestUser(authmodels.RoleAdvisor)
	report := &models.Report{
		Status:    models.ReportStatusSubmitted,
		CreatedBy: primitive.NewObjectID(),
		AccessControl: models.ReportAccessControl{
			AssignedExperts: []models.ExpertGrant{
				{ExpertID: expert.ID, CanComment: true},
			},
			Advisors: []models.AdvisorGrant{
				{AdvisorID: advisor.ID, CanComment: true},
			},
		},
	}

	if !CanCommentReport(expert, report) {
		t.Error("Chuyên gia được gán canComment phải bình luận được")
	}
	if !CanCommentReport(advisor, report) {
		t.Error("Cố vấn được gán canComment phải bình luận được")
	}

	expertNoGrant := newTestUser(authmodels.RoleExpert)
	if CanCommentReport(expertNoGrant, report) {
		t.Error("Chuyên gia không được gán không được bình luận")
	}
}

func TestCanCommentReport_GrantCanCommentFalse(t *testing.T) {
	expert := newTestUser(authmodels.RoleExpert)
	report := &models.Report{
		CreatedBy: primitive.NewObjectID(),
		AccessControl: models.ReportAccessControl{
			AssignedExperts: []models.ExpertGrant{
				{ExpertID: expert.ID, CanComment: false, CanEvaluate: true},
			},
		},
	}

	if CanCommentReport(expert, report) {
		t.Error("Chuyên gia được gán nhưng canComment=false không được bình luận")
	}
}

func TestCanEvaluateReport(t *testing.T) {
	expert := newTestUser(authmodels.RoleExpert)
	report := &models.Report{
		CreatedBy: primitive.NewObjectID(),
		AccessControl: models.ReportAccessControl{
			AssignedExperts: []models.ExpertGrant{
				{ExpertID: expert.ID, CanEvaluate: true},
			},
		},
	}

	if !CanEvaluateReport(expert, report) {
		t.Error("Chuyên gia được gán canEvaluate phải chấm điểm được")
	}

	expertCommentOnly := newTestUser(authmodels.RoleExpert)
	reportCommentOnly := &models.Report{
		CreatedBy: primitive.NewObjectID(),
		AccessControl: models.ReportAccessControl{
			AssignedExperts: []models.ExpertGrant{
				{ExpertID: expertCommentOnly.ID, CanComment: true, CanEvaluate: false},
			},
		},
	}
	if CanEvaluateReport(expertCommentOnly, reportCommentOnly) {
		t.Error("Chuyên gia chỉ có canComment không được chấm điểm")
	}
}

func TestCanEvaluateReport_CoVanKhongBaoGioChamDiem(t *testing.T) {
	advisor := newTestUser(authmodels.RoleAdvisor)
	report := &models.Report{
		CreatedBy: primitive.NewObjectID(),
		AccessControl: models.ReportAccessControl{
			Advisors: []models.AdvisorGrant{
				{AdvisorID: advisor.ID, CanComment: true},
			},
		},
	}

	if CanEvaluateReport(advisor, report) {
		t.Error("Cố vấn không bao giờ được chấm điểm, kể cả khi được gán vào báo cáo")
	}
}
