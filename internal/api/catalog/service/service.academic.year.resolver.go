package catalogsvc

import (
	"context"
	"strings"
	"time"

	"edu_accredit/internal/api/events"
	"edu_accredit/internal/global"
	"edu_accredit/internal/utility"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// YearCodeFallback là token năm thay thế khi không resolve được năm học.
// Việc sinh mã báo cáo không bao giờ fail vì thiếu năm học.
const YearCodeFallback = "XXXX"

// AcademicYearResolver resolve mã năm học cho việc sinh mã báo cáo.
// Mã năm học lưu dạng "2024-2025" được strip các ký tự phân cách thành "20242025".
// Kết quả được cache vì mã năm học gần như không thay đổi.
type AcademicYearResolver struct {
	yearService *AcademicYearService
	cache       *utility.Cache
}

// NewAcademicYearResolver tạo mới AcademicYearResolver
func NewAcademicYearResolver() (*AcademicYearResolver, error) {
	yearService, err := NewAcademicYearService()
	if err != nil {
		return nil, err
	}
	resolver := &AcademicYearResolver{
		yearService: yearService,
		cache:       utility.NewCache(30*time.Minute, 1*time.Hour),
	}

	// Invalidate cache khi năm học bị sửa hoặc xóa (mã năm học có thể đổi)
	events.OnDataChanged(func(ctx context.Context, e events.DataChangeEvent) {
		if e.CollectionName != global.MongoDB_ColNames.AcademicYears || e.DocumentID.IsZero() {
			return
		}
		resolver.cache.Delete("year_code:" + e.DocumentID.Hex())
	})

	return resolver, nil
}

// ResolveYearCode trả về mã năm học đã strip phân cách cho academicYearID.
// Không tìm thấy năm học hoặc lỗi database → trả về YearCodeFallback, không trả lỗi.
func (r *AcademicYearResolver) ResolveYearCode(ctx context.Context, academicYearID primitive.ObjectID) string {
	if academicYearID.IsZero() {
		return YearCodeFallback
	}

	cacheKey := "year_code:" + academicYearID.Hex()
	if cached, found := r.cache.Get(cacheKey); found {
		return cached.(string)
	}

	year, err := r.yearService.FindOneById(ctx, academicYearID)
	if err != nil {
		return YearCodeFallback
	}

	code := StripYearCodeSeparators(year.Code)
	if code == "" {
		return YearCodeFallback
	}

	r.cache.Set(cacheKey, code)
	return code
}

// StripYearCodeSeparators loại bỏ các ký tự phân cách ("-", "_", khoảng trắng) khỏi mã năm học.
// VD: "2024-2025" → "20242025".
func StripYearCodeSeparators(code string) string {
	replacer := strings.NewReplacer("-", "", "_", "", " ", "")
	return replacer.Replace(strings.TrimSpace(code))
}
