// Package reportsvc - Test ràng buộc tiêu chuẩn/tiêu chí theo loại báo cáo.
package reportsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "edu_accredit/internal/api/auth/models"
	models "edu_accredit/internal/api/report/models"
	"edu_accredit/internal/common"
)

func TestValidateTypeReferences_LoaiKhongHopLe(t *testing.T) {
	err := ValidateTypeReferences("khong_ton_tai", primitive.NilObjectID, primitive.NilObjectID)
	if err == nil {
		t.Error("Loại báo cáo không hợp lệ phải bị từ chối")
	}
}

func TestValidateTypeReferences_TieuChiThieuTieuChuan_LuonKhongHopLe(t *testing.T) {
	criteriaID := primitive.NewObjectID()
	for _, reportType := range []string{
		models.ReportTypeCriteriaAnalysis,
		models.ReportTypeStandardAnalysis,
		models.ReportTypeComprehensiveReport,
	} {
		err := ValidateTypeReferences(reportType, primitive.NilObjectID, criteriaID)
		if err == nil {
			t.Errorf("Loại %s: có tiêu chí mà thiếu tiêu chuẩn phải bị từ chối", reportType)
		}
	}
}

func TestValidateTypeReferences_PhanTichTieuChi(t *testing.T) {
	standardID := primitive.NewObjectID()
	criteriaID := primitive.NewObjectID()

	if err := ValidateTypeReferences(models.ReportTypeCriteriaAnalysis, standardID, criteriaID); err != nil {
		t.Errorf("Phân tích tiêu chí có đủ tiêu chuẩn + tiêu chí phải hợp lệ, got: %v", err)
	}
	if err := ValidateTypeReferences(models.ReportTypeCriteriaAnalysis, standardID, primitive.NilObjectID); err == nil {
		t.Error("Phân tích tiêu chí thiếu tiêu chí phải bị từ chối")
	}
}

func TestValidateTypeReferences_PhanTichTieuChuan(t *testing.T) {
	standardID := primitive.NewObjectID()

	if err := ValidateTypeReferences(models.ReportTypeStandardAnalysis, standardID, primitive.NilObjectID); err != nil {
		t.Errorf("Phân tích tiêu chuẩn có tiêu chuẩn phải hợp lệ, got: %v", err)
	}
	if err := ValidateTypeReferences(models.ReportTypeStandardAnalysis, primitive.NilObjectID, primitive.NilObjectID); err == nil {
		t.Error("Phân tích tiêu chuẩn thiếu tiêu chuẩn phải bị từ chối")
	}
}

func TestValidateTypeReferences_BaoCaoTongHop_KhongBatBuoc(t *testing.T) {
	if err := ValidateTypeReferences(models.ReportTypeComprehensiveReport, primitive.NilObjectID, primitive.NilObjectID); err != nil {
		t.Errorf("Báo cáo tổng hợp không bắt buộc tiêu chuẩn/tiêu chí, got: %v", err)
	}

	standardID := primitive.NewObjectID()
	if err := ValidateTypeReferences(models.ReportTypeComprehensiveReport, standardID, primitive.NilObjectID); err != nil {
		t.Errorf("Báo cáo tổng hợp kèm tiêu chuẩn vẫn hợp lệ, got: %v", err)
	}
}

func TestEnsureRequestEditable(t *testing.T) {
	if err := EnsureRequestEditable(&models.ReportRequest{Status: models.RequestStatusPending}); err != nil {
		t.Errorf("Yêu cầu đang chờ phải chỉnh sửa được, got: %v", err)
	}

	for _, status := range []string{
		models.RequestStatusAccepted,
		models.RequestStatusInProgress,
		models.RequestStatusCompleted,
		models.RequestStatusRejected,
	} {
		err := EnsureRequestEditable(&models.ReportRequest{Status: status})
		if err == nil {
			t.Errorf("Trạng thái %s: chỉnh sửa phải bị chặn", status)
			continue
		}
		if got := errorCode(t, err); got != common.ErrCodeBusinessState.Code {
			t.Errorf("Trạng thái %s: phải là lỗi trạng thái, got code %s", status, got)
		}
	}
}

func TestAssignmentNotifyPriority(t *testing.T) {
	if got := AssignmentNotifyPriority(models.PriorityUrgent); got != models.PriorityHigh {
		t.Errorf("Yêu cầu khẩn cấp phải tạo thông báo mức cao, got %s", got)
	}
	for _, priority := range []string{models.PriorityLow, models.PriorityNormal, models.PriorityHigh} {
		if got := AssignmentNotifyPriority(priority); got != models.PriorityNormal {
			t.Errorf("Độ ưu tiên %s: thông báo phải ở mức thường, got %s", priority, got)
		}
	}
}

func TestCanViewRequest(t *testing.T) {
	creator := newTestUser(authmodels.RoleManager)
	assignee := newTestUser(authmodels.RoleExpert)
	admin := newTestUser(authmodels.RoleAdmin)
	outsider := newTestUser(authmodels.RoleExpert)

	request := &models.ReportRequest{CreatedBy: creator.ID, AssignedTo: assignee.ID}

	if !CanViewRequest(admin, request) {
		t.Error("Admin phải xem được mọi yêu cầu")
	}
	if !CanViewRequest(creator, request) {
		t.Error("Người tạo phải xem được yêu cầu của mình")
	}
	if !CanViewRequest(assignee, request) {
		t.Error("Người được giao phải xem được yêu cầu giao cho mình")
	}
	if CanViewRequest(outsider, request) {
		t.Error("Người ngoài cuộc không được xem yêu cầu")
	}
}

func TestRequestScopeFilter(t *testing.T) {
	admin := newTestUser(authmodels.RoleAdmin)
	if filter := RequestScopeFilter(admin); len(filter) != 0 {
		t.Errorf("Admin phải thấy tất cả yêu cầu (filter rỗng), got %v", filter)
	}

	manager := newTestUser(authmodels.RoleManager)
	managerFilter := RequestScopeFilter(manager)
	clauses, ok := managerFilter["$or"].([]map[string]interface{})
	if !ok || len(clauses) != 2 {
		t.Fatalf("Manager phải được lọc theo $or createdBy/assignedTo, got %v", managerFilter)
	}
	if clauses[0]["createdBy"] != manager.ID || clauses[1]["assignedTo"] != manager.ID {
		t.Errorf("Filter của manager phải trỏ về chính manager, got %v", managerFilter)
	}

	expert := newTestUser(authmodels.RoleExpert)
	expertFilter := RequestScopeFilter(expert)
	if expertFilter["assignedTo"] != expert.ID || len(expertFilter) != 1 {
		t.Errorf("Chuyên gia chỉ được thấy yêu cầu giao cho mình, got %v", expertFilter)
	}
}

func TestCountWords(t *testing.T) {
	if got := CountWords("một hai ba"); got != 3 {
		t.Errorf("CountWords sai: got %d, want 3", got)
	}
	if got := CountWords(""); got != 0 {
		t.Errorf("CountWords chuỗi rỗng phải là 0, got %d", got)
	}
	if got := CountWords("  nhiều   khoảng \t trắng \n liên tiếp  "); got != 5 {
		t.Errorf("CountWords với whitespace hỗn hợp sai: got %d, want 5", got)
	}
}
