package reportsvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	authmodels "edu_accredit/internal/api/auth/models"
	basemodels "edu_accredit/internal/api/base/models"
	models "edu_accredit/internal/api/report/models"
	"edu_accredit/internal/common"
)

// AssessmentFilter là bộ lọc cho danh sách báo cáo đã xuất bản.
type AssessmentFilter struct {
	Search     string
	Type       string
	StandardID primitive.ObjectID
	CriteriaID primitive.ObjectID
	SortBy     string
	SortOrder  int
}

// buildAssessmentFilter dựng filter MongoDB cho danh sách đánh giá.
// Danh sách chỉ gồm báo cáo đã xuất bản; báo cáo xuất bản hiển thị với mọi
// người dùng đã đăng nhập nên không cần lọc thêm theo quyền.
func buildAssessmentFilter(filter AssessmentFilter) bson.M {
	query := bson.M{"status": models.ReportStatusPublished}

	if filter.Search != "" {
		query["$or"] = []bson.M{
			{"title": primitive.Regex{Pattern: filter.Search, Options: "i"}},
			{"code": primitive.Regex{Pattern: filter.Search, Options: "i"}},
		}
	}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if !filter.StandardID.IsZero() {
		query["standardId"] = filter.StandardID
	}
	if !filter.CriteriaID.IsZero() {
		query["criteriaId"] = filter.CriteriaID
	}
	return query
}

// ListPublished trả về danh sách báo cáo đã xuất bản có phân trang.
func (s *ReportService) ListPublished(ctx context.Context, filter AssessmentFilter, page, limit int64) (*basemodels.PaginateResult[models.Report], error) {
	sortBy := filter.SortBy
	if sortBy == "" {
		sortBy = "publishedAt"
	}
	sortOrder := filter.SortOrder
	if sortOrder != 1 && sortOrder != -1 {
		sortOrder = -1
	}

	opts := options.Find().SetSort(bson.D{{Key: sortBy, Value: sortOrder}})
	return s.FindWithPagination(ctx, buildAssessmentFilter(filter), page, limit, opts)
}

// FindPublishedDetail trả về chi tiết một báo cáo cho trang đánh giá.
// Báo cáo không tồn tại, hoặc chưa xuất bản mà người xem không có quyền,
// đều trả về 404 như nhau để không lộ sự tồn tại của báo cáo.
func (s *ReportService) FindPublishedDetail(ctx context.Context, id primitive.ObjectID, viewer *authmodels.User) (models.Report, error) {
	var zero models.Report

	report, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, common.ErrNotFound
	}

	if report.Status != models.ReportStatusPublished && !CanViewReport(viewer, &report) {
		return zero, common.ErrNotFound
	}

	return report, nil
}

// AssessmentStatistics là thống kê số lượng báo cáo xuất bản theo loại.
type AssessmentStatistics struct {
	Total            int64 `json:"total"`
	CriteriaAnalysis int64 `json:"criteriaAnalysis"`
	StandardAnalysis int64 `json:"standardAnalysis"`
	Comprehensive    int64 `json:"comprehensive"`
}

// Statistics đếm số báo cáo đã xuất bản theo từng loại.
func (s *ReportService) Statistics(ctx context.Context) (*AssessmentStatistics, error) {
	stats := &AssessmentStatistics{}

	counts := map[string]*int64{
		models.ReportTypeCriteriaAnalysis:    &stats.CriteriaAnalysis,
		models.ReportTypeStandardAnalysis:    &stats.StandardAnalysis,
		models.ReportTypeComprehensiveReport: &stats.Comprehensive,
	}
	for reportType, target := range counts {
		count, err := s.CountDocuments(ctx, bson.M{
			"status": models.ReportStatusPublished,
			"type":   reportType,
		})
		if err != nil {
			return nil, err
		}
		*target = count
		stats.Total += count
	}

	return stats, nil
}
