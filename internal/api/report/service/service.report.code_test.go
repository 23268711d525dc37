// Package reportsvc - Test sinh mã báo cáo: dựng base code, zero-pad, tách và render số thứ tự.
package reportsvc

import (
	"testing"

	models "edu_accredit/internal/api/report/models"
)

func TestBuildBaseCode_DayDuThanhPhan(t *testing.T) {
	got := BuildBaseCode(models.ReportTypeCriteriaAnalysis, "20242025", "1", "3")
	want := "CA-20242025-01-03"
	if got != want {
		t.Errorf("BuildBaseCode sai: got %q, want %q", got, want)
	}
}

func TestBuildBaseCode_ChiTieuChuan(t *testing.T) {
	got := BuildBaseCode(models.ReportTypeStandardAnalysis, "20242025", "7", "")
	want := "SA-20242025-07"
	if got != want {
		t.Errorf("BuildBaseCode sai: got %q, want %q", got, want)
	}
}

func TestBuildBaseCode_BaoCaoTongHop(t *testing.T) {
	got := BuildBaseCode(models.ReportTypeComprehensiveReport, "20242025", "", "")
	want := "CR-20242025"
	if got != want {
		t.Errorf("BuildBaseCode sai: got %q, want %q", got, want)
	}
}

func TestBuildBaseCode_MaDaDuDai_KhongPad(t *testing.T) {
	got := BuildBaseCode(models.ReportTypeCriteriaAnalysis, "20242025", "12", "105")
	want := "CA-20242025-12-105"
	if got != want {
		t.Errorf("Mã đã đủ dài phải giữ nguyên: got %q, want %q", got, want)
	}
}

func TestPadCode(t *testing.T) {
	if got := PadCode("1", 2); got != "01" {
		t.Errorf("PadCode(\"1\", 2) = %q, want \"01\"", got)
	}
	if got := PadCode("12", 2); got != "12" {
		t.Errorf("PadCode(\"12\", 2) = %q, want \"12\"", got)
	}
	if got := PadCode("123", 2); got != "123" {
		t.Errorf("PadCode(\"123\", 2) = %q, want \"123\"", got)
	}
}

func TestParseSequence(t *testing.T) {
	if got := ParseSequence("CA-20242025-01-03-007"); got != 7 {
		t.Errorf("ParseSequence sai: got %d, want 7", got)
	}
	if got := ParseSequence("CR-20242025-123"); got != 123 {
		t.Errorf("ParseSequence sai: got %d, want 123", got)
	}
	if got := ParseSequence("khong-co-so-abc"); got != 0 {
		t.Errorf("Mã không có hậu tố số phải trả về 0, got %d", got)
	}
	if got := ParseSequence("CA-20242025-"); got != 0 {
		t.Errorf("Mã kết thúc bằng dấu gạch phải trả về 0, got %d", got)
	}
	if got := ParseSequence("khongcodaugach"); got != 0 {
		t.Errorf("Mã không có dấu gạch phải trả về 0, got %d", got)
	}
}

func TestRenderCode_ZeroPad3ChuSo(t *testing.T) {
	if got := RenderCode("CA-20242025-01-03", 1); got != "CA-20242025-01-03-001" {
		t.Errorf("RenderCode sai: got %q", got)
	}
	if got := RenderCode("CR-20242025", 42); got != "CR-20242025-042" {
		t.Errorf("RenderCode sai: got %q", got)
	}
	if got := RenderCode("CR-20242025", 1234); got != "CR-20242025-1234" {
		t.Errorf("Số thứ tự vượt 3 chữ số phải giữ nguyên: got %q", got)
	}
}

func TestRenderParseRoundTrip(t *testing.T) {
	code := RenderCode("SA-20242025-07", 99)
	if got := ParseSequence(code); got != 99 {
		t.Errorf("ParseSequence(RenderCode(..., 99)) = %d, want 99", got)
	}
}
