// Package reportsvc - Test điều kiện chuyển trạng thái vòng đời báo cáo.
package reportsvc

import (
	"errors"
	"testing"

	models "edu_accredit/internal/api/report/models"
	"edu_accredit/internal/common"
)

func selfEval(content string, score int) *models.SelfEvaluation {
	return &models.SelfEvaluation{Content: content, Score: score}
}

func errorCode(t *testing.T, err error) string {
	t.Helper()
	var cerr *common.Error
	if !errors.As(err, &cerr) {
		t.Fatalf("Lỗi phải là *common.Error, got %T", err)
	}
	return cerr.Code.Code
}

func TestEnsureSubmittable_NhapDuTuDanhGia(t *testing.T) {
	report := &models.Report{Status: models.ReportStatusDraft, SelfEvaluation: selfEval("Đạt yêu cầu", 5)}
	if err := EnsureSubmittable(report); err != nil {
		t.Errorf("Báo cáo nháp có tự đánh giá hoàn chỉnh phải nộp được, got: %v", err)
	}
}

func TestEnsureSubmittable_ThieuTuDanhGia(t *testing.T) {
	report := &models.Report{Status: models.ReportStatusDraft}
	err := EnsureSubmittable(report)
	if err == nil {
		t.Fatal("Nộp báo cáo chưa có tự đánh giá phải bị chặn")
	}
	if got := errorCode(t, err); got != common.ErrCodeValidationInput.Code {
		t.Errorf("Thiếu tự đánh giá phải là lỗi validation, got code %s", got)
	}
}

func TestEnsureSubmittable_TuDanhGiaKhongHoanChinh(t *testing.T) {
	cases := []struct {
		name string
		eval *models.SelfEvaluation
	}{
		{"nội dung toàn khoảng trắng", selfEval("   ", 5)},
		{"điểm dưới thang", selfEval("Đạt yêu cầu", 0)},
		{"điểm trên thang", selfEval("Đạt yêu cầu", 8)},
	}
	for _, tc := range cases {
		report := &models.Report{Status: models.ReportStatusDraft, SelfEvaluation: tc.eval}
		if err := EnsureSubmittable(report); err == nil {
			t.Errorf("%s: nộp phải bị chặn", tc.name)
		}
	}
}

func TestEnsureSubmittable_KhongPhaiNhap(t *testing.T) {
	for _, status := range []string{
		models.ReportStatusSubmitted,
		models.ReportStatusPublished,
		models.ReportStatusArchived,
	} {
		report := &models.Report{Status: status, SelfEvaluation: selfEval("Đạt yêu cầu", 5)}
		err := EnsureSubmittable(report)
		if err == nil {
			t.Errorf("Trạng thái %s: nộp phải bị chặn", status)
			continue
		}
		if got := errorCode(t, err); got != common.ErrCodeBusinessState.Code {
			t.Errorf("Trạng thái %s: phải là lỗi trạng thái, got code %s", status, got)
		}
	}
}

func TestEnsureUnpublishable(t *testing.T) {
	if err := EnsureUnpublishable(&models.Report{Status: models.ReportStatusPublished}); err != nil {
		t.Errorf("Báo cáo đang xuất bản phải gỡ được, got: %v", err)
	}

	for _, status := range []string{
		models.ReportStatusDraft,
		models.ReportStatusSubmitted,
		models.ReportStatusArchived,
	} {
		err := EnsureUnpublishable(&models.Report{Status: status})
		if err == nil {
			t.Errorf("Trạng thái %s: gỡ xuất bản phải bị chặn", status)
			continue
		}
		if got := errorCode(t, err); got != common.ErrCodeBusinessState.Code {
			t.Errorf("Trạng thái %s: phải là lỗi trạng thái, got code %s", status, got)
		}
	}
}
