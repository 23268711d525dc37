// Package catalogsvc - Test strip ký tự phân cách khỏi mã năm học.
package catalogsvc

import "testing"

func TestStripYearCodeSeparators(t *testing.T) {
	if got := StripYearCodeSeparators("2024-2025"); got != "20242025" {
		t.Errorf("StripYearCodeSeparators sai: got %q, want \"20242025\"", got)
	}
	if got := StripYearCodeSeparators("2024_2025"); got != "20242025" {
		t.Errorf("StripYearCodeSeparators sai: got %q, want \"20242025\"", got)
	}
	if got := StripYearCodeSeparators(" 2024 2025 "); got != "20242025" {
		t.Errorf("StripYearCodeSeparators phải bỏ khoảng trắng: got %q", got)
	}
	if got := StripYearCodeSeparators("20242025"); got != "20242025" {
		t.Errorf("Mã không có phân cách phải giữ nguyên: got %q", got)
	}
	if got := StripYearCodeSeparators(""); got != "" {
		t.Errorf("Chuỗi rỗng phải trả về rỗng: got %q", got)
	}
}

func TestYearCodeFallback(t *testing.T) {
	if YearCodeFallback != "XXXX" {
		t.Errorf("YearCodeFallback phải là XXXX, got %q", YearCodeFallback)
	}
}
