// Package models - Test kiểm tra loại báo cáo hợp lệ.
package models

import "testing"

func TestIsValidReportType(t *testing.T) {
	for _, valid := range []string{
		ReportTypeCriteriaAnalysis,
		ReportTypeStandardAnalysis,
		ReportTypeComprehensiveReport,
	} {
		if !IsValidReportType(valid) {
			t.Errorf("IsValidReportType(%q) phải trả về true", valid)
		}
	}

	for _, invalid := range []string{"", "draft", "criteria", "CRITERIA_ANALYSIS"} {
		if IsValidReportType(invalid) {
			t.Errorf("IsValidReportType(%q) phải trả về false", invalid)
		}
	}
}
