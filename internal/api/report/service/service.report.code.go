// Package reportsvc - service cho domain báo cáo: sinh mã, kiểm tra quyền,
// vòng đời báo cáo và luồng yêu cầu viết báo cáo.
package reportsvc

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "edu_accredit/internal/api/base/service"
	catalogsvc "edu_accredit/internal/api/catalog/service"
	models "edu_accredit/internal/api/report/models"
)

// Tiền tố mã theo loại báo cáo.
var codeTypePrefix = map[string]string{
	models.ReportTypeCriteriaAnalysis:    "CA",
	models.ReportTypeStandardAnalysis:    "SA",
	models.ReportTypeComprehensiveReport: "CR",
}

// CodeGenerator sinh mã báo cáo duy nhất, dễ đọc và tăng dần theo từng nhóm
// (loại, năm học, tiêu chuẩn, tiêu chí). Generator chỉ đưa ra giá trị kế tiếp
// thiện chí từ lần quét mã gần nhất; tính duy nhất tuyệt đối do unique index
// trên trường code đảm bảo, kết hợp sinh lại khi trùng.
type CodeGenerator struct {
	reports      basesvc.BaseServiceMongo[models.Report]
	yearResolver *catalogsvc.AcademicYearResolver
}

// NewCodeGenerator tạo mới CodeGenerator
func NewCodeGenerator(reports basesvc.BaseServiceMongo[models.Report], yearResolver *catalogsvc.AcademicYearResolver) *CodeGenerator {
	return &CodeGenerator{
		reports:      reports,
		yearResolver: yearResolver,
	}
}

// BuildBaseCode dựng phần gốc của mã: PREFIX-YEARCODE[-SS][-CC].
// Mã tiêu chuẩn/tiêu chí được zero-pad thành 2 chữ số khi có mặt.
func BuildBaseCode(reportType, yearCode, standardCode, criteriaCode string) string {
	var sb strings.Builder
	sb.WriteString(codeTypePrefix[reportType])
	sb.WriteString("-")
	sb.WriteString(yearCode)

	if standardCode != "" {
		sb.WriteString("-")
		sb.WriteString(PadCode(standardCode, 2))
	}
	if criteriaCode != "" {
		sb.WriteString("-")
		sb.WriteString(PadCode(criteriaCode, 2))
	}
	return sb.String()
}

// PadCode zero-pad một mã số về độ dài width. Mã đã đủ dài giữ nguyên.
func PadCode(code string, width int) string {
	if len(code) >= width {
		return code
	}
	return strings.Repeat("0", width-len(code)) + code
}

// ParseSequence tách số thứ tự ở cuối một mã dạng base-NNN.
// Trả về 0 nếu mã không có hậu tố số hợp lệ.
func ParseSequence(code string) int {
	idx := strings.LastIndex(code, "-")
	if idx < 0 || idx == len(code)-1 {
		return 0
	}
	seq, err := strconv.Atoi(code[idx+1:])
	if err != nil {
		return 0
	}
	return seq
}

// RenderCode ghép mã hoàn chỉnh base-NNN với hậu tố zero-pad 3 chữ số.
func RenderCode(baseCode string, sequence int) string {
	return fmt.Sprintf("%s-%03d", baseCode, sequence)
}

// GenerateCode sinh mã kế tiếp cho nhóm (loại, năm học, tiêu chuẩn, tiêu chí).
// Không resolve được năm học → dùng token thay thế, không fail việc sinh mã.
// Hai request đồng thời có thể quan sát cùng một "mã cuối" và sinh mã trùng;
// caller phải bắt lỗi trùng unique index và gọi lại để sinh mã mới.
func (g *CodeGenerator) GenerateCode(ctx context.Context, reportType string, academicYearID primitive.ObjectID, standardCode, criteriaCode string) string {
	yearCode := g.yearResolver.ResolveYearCode(ctx, academicYearID)
	baseCode := BuildBaseCode(reportType, yearCode, standardCode, criteriaCode)

	sequence := g.nextSequence(ctx, baseCode)
	return RenderCode(baseCode, sequence)
}

// nextSequence quét mã lớn nhất đã lưu khớp với base và trả về số kế tiếp.
// Không có mã nào hoặc lỗi truy vấn → bắt đầu từ 1.
func (g *CodeGenerator) nextSequence(ctx context.Context, baseCode string) int {
	pattern := "^" + regexp.QuoteMeta(baseCode) + `-\d+$`
	filter := bson.M{"code": primitive.Regex{Pattern: pattern}}

	opts := options.FindOne().
		SetSort(bson.D{{Key: "code", Value: -1}}).
		SetProjection(bson.M{"code": 1})

	last, err := g.reports.FindOne(ctx, filter, opts)
	if err != nil {
		return 1
	}
	return ParseSequence(last.Code) + 1
}
