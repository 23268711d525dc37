package reportsvc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "edu_accredit/internal/api/auth/models"
	basesvc "edu_accredit/internal/api/base/service"
	catalogsvc "edu_accredit/internal/api/catalog/service"
	models "edu_accredit/internal/api/report/models"
	"edu_accredit/internal/common"
	"edu_accredit/internal/global"
)

// Số lần sinh lại mã tối đa khi gặp trùng unique index.
const maxCodeRetries = 5

// ReportService là engine vòng đời báo cáo: sinh mã khi tạo, nộp, xuất bản,
// gỡ xuất bản, cập nhật nội dung kèm ghi phiên bản, bình luận và tự đánh giá.
// Engine không kiểm tra quyền; việc đó thuộc về middleware phân quyền ở tầng HTTP.
type ReportService struct {
	*basesvc.BaseServiceMongoImpl[models.Report]
	codeGenerator      *CodeGenerator
	standardService    *catalogsvc.StandardService
	criteriaService    *catalogsvc.CriteriaService
	requestService     *ReportRequestService
	activityLogService *ActivityLogService
}

// NewReportService tạo mới ReportService
func NewReportService() (*ReportService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Reports)
	if !exist {
		return nil, fmt.Errorf("failed to get reports collection: %v", common.ErrNotFound)
	}
	base := basesvc.NewBaseServiceMongo[models.Report](collection)

	yearResolver, err := catalogsvc.NewAcademicYearResolver()
	if err != nil {
		return nil, err
	}
	standardService, err := catalogsvc.NewStandardService()
	if err != nil {
		return nil, err
	}
	criteriaService, err := catalogsvc.NewCriteriaService()
	if err != nil {
		return nil, err
	}
	requestService, err := NewReportRequestService()
	if err != nil {
		return nil, err
	}
	activityLogService, err := NewActivityLogService()
	if err != nil {
		return nil, err
	}

	return &ReportService{
		BaseServiceMongoImpl: base,
		codeGenerator:        NewCodeGenerator(base, yearResolver),
		standardService:      standardService,
		criteriaService:      criteriaService,
		requestService:       requestService,
		activityLogService:   activityLogService,
	}, nil
}

// CountWords đếm số từ của nội dung bằng cách tách theo khoảng trắng.
func CountWords(content string) int {
	return len(strings.Fields(content))
}

// resolveRefCodes lấy mã tiêu chuẩn/tiêu chí cho việc sinh mã báo cáo.
// Không resolve được thì trả chuỗi rỗng; mã báo cáo vẫn sinh được, chỉ thiếu phân đoạn.
func (s *ReportService) resolveRefCodes(ctx context.Context, standardID, criteriaID primitive.ObjectID) (string, string) {
	var standardCode, criteriaCode string
	if !standardID.IsZero() {
		if standard, err := s.standardService.FindOneById(ctx, standardID); err == nil {
			standardCode = standard.Code
		}
	}
	if !criteriaID.IsZero() {
		if criteria, err := s.criteriaService.FindOneById(ctx, criteriaID); err == nil {
			criteriaCode = criteria.Code
		}
	}
	return standardCode, criteriaCode
}

// CreateReport tạo báo cáo mới ở trạng thái draft với mã do hệ thống sinh.
// Trùng mã do request đồng thời → sinh lại mã và lưu lại, tối đa maxCodeRetries lần;
// hết lượt thử mới trả lỗi cho caller.
func (s *ReportService) CreateReport(ctx context.Context, report models.Report, creator *authmodels.User) (models.Report, error) {
	var zero models.Report

	if err := ValidateTypeReferences(report.Type, report.StandardID, report.CriteriaID); err != nil {
		return zero, err
	}

	now := time.Now().UnixMilli()
	report.Status = models.ReportStatusDraft
	if report.ContentMethod == "" {
		report.ContentMethod = models.ContentMethodOnlineEditor
	}
	report.WordCount = CountWords(report.Content)
	report.CreatedBy = creator.ID
	report.UpdatedBy = creator.ID
	report.CreatedAt = now
	report.UpdatedAt = now

	if report.Content != "" {
		report.Versions = []models.ReportVersion{{
			Content:    report.Content,
			RequestID:  report.RequestID,
			ChangeNote: "Khởi tạo nội dung",
			ChangedBy:  creator.ID,
			ChangedAt:  now,
		}}
	}

	standardCode, criteriaCode := s.resolveRefCodes(ctx, report.StandardID, report.CriteriaID)

	var lastErr error
	for attempt := 0; attempt < maxCodeRetries; attempt++ {
		report.Code = s.codeGenerator.GenerateCode(ctx, report.Type, report.AcademicYearID, standardCode, criteriaCode)

		created, err := s.InsertOne(ctx, report)
		if err == nil {
			s.activityLogService.LogReportAction(ctx, creator.ID, &created,
				"report_create", fmt.Sprintf("Tạo mới báo cáo: %s", created.Title),
				models.SeverityMedium, false)
			return created, nil
		}
		if !common.IsDuplicateKey(err) {
			return zero, err
		}

		lastErr = err
		logrus.WithFields(logrus.Fields{
			"code":    report.Code,
			"attempt": attempt + 1,
		}).Warn("Mã báo cáo bị trùng, sinh lại mã mới")
	}

	return zero, common.NewError(common.ErrCodeBusinessOperation,
		"Không thể sinh mã báo cáo duy nhất, vui lòng thử lại",
		common.StatusInternalServerError, map[string]interface{}{"lastError": lastErr.Error()})
}

// EnsureSubmittable kiểm tra điều kiện nộp báo cáo: phải đang là nháp và phần
// tự đánh giá đã hoàn chỉnh (có nội dung, điểm trong thang 1-7).
func EnsureSubmittable(report *models.Report) error {
	if report.Status != models.ReportStatusDraft {
		return common.NewStateError("Chỉ nộp được báo cáo đang ở trạng thái nháp", report.Status)
	}
	if report.SelfEvaluation == nil || strings.TrimSpace(report.SelfEvaluation.Content) == "" ||
		report.SelfEvaluation.Score < 1 || report.SelfEvaluation.Score > 7 {
		return common.NewValidationError("Cần hoàn thành phần tự đánh giá (nội dung và điểm 1-7) trước khi nộp báo cáo")
	}
	return nil
}

// EnsureUnpublishable kiểm tra điều kiện gỡ xuất bản: báo cáo phải đang xuất bản.
func EnsureUnpublishable(report *models.Report) error {
	if report.Status != models.ReportStatusPublished {
		return common.NewStateError("Chỉ gỡ được báo cáo đang xuất bản", report.Status)
	}
	return nil
}

// Submit nộp báo cáo: draft → submitted.
// Điều kiện: phần tự đánh giá phải có nội dung và điểm trong thang 1-7.
// Nếu báo cáo được tạo từ một yêu cầu viết báo cáo, yêu cầu đó được chuyển sang
// completed ngay sau khi nộp; bước này thất bại thì báo cáo vẫn giữ trạng thái
// đã nộp và caller nhận lỗi partial riêng biệt để retry việc hoàn thành yêu cầu.
func (s *ReportService) Submit(ctx context.Context, report *models.Report, actor *authmodels.User) (models.Report, error) {
	var zero models.Report

	if err := EnsureSubmittable(report); err != nil {
		return zero, err
	}

	now := time.Now().UnixMilli()
	updated, err := s.UpdateById(ctx, report.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":      models.ReportStatusSubmitted,
			"submittedAt": now,
			"updatedBy":   actor.ID,
			"updatedAt":   now,
		},
	})
	if err != nil {
		return zero, err
	}

	s.activityLogService.LogReportAction(ctx, actor.ID, &updated,
		"report_submit", fmt.Sprintf("Nộp báo cáo: %s", updated.Title),
		models.SeverityHigh, true)

	if !report.RequestID.IsZero() {
		if err := s.requestService.Complete(ctx, report.RequestID, report.ID); err != nil {
			logrus.WithFields(logrus.Fields{
				"reportId":  report.ID.Hex(),
				"requestId": report.RequestID.Hex(),
				"error":     err.Error(),
			}).Error("Báo cáo đã nộp nhưng không hoàn thành được yêu cầu gốc")
			return updated, common.NewError(common.ErrCodeBusinessPartial,
				"Báo cáo đã nộp thành công nhưng chưa cập nhật được trạng thái yêu cầu gốc",
				common.StatusInternalServerError, map[string]interface{}{
					"reportId":  report.ID.Hex(),
					"requestId": report.RequestID.Hex(),
				})
		}
	}

	return updated, nil
}

// Publish xuất bản báo cáo từ bất kỳ trạng thái nào.
// Việc giới hạn ai được xuất bản do middleware phân quyền quyết định.
func (s *ReportService) Publish(ctx context.Context, report *models.Report, actor *authmodels.User) (models.Report, error) {
	now := time.Now().UnixMilli()
	updated, err := s.UpdateById(ctx, report.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":      models.ReportStatusPublished,
			"publishedAt": now,
			"updatedBy":   actor.ID,
			"updatedAt":   now,
		},
	})
	if err != nil {
		return models.Report{}, err
	}

	s.activityLogService.LogReportAction(ctx, actor.ID, &updated,
		"report_publish", fmt.Sprintf("Xuất bản báo cáo: %s", updated.Title),
		models.SeverityHigh, true)

	return updated, nil
}

// Unpublish gỡ xuất bản: published → draft.
func (s *ReportService) Unpublish(ctx context.Context, report *models.Report, actor *authmodels.User) (models.Report, error) {
	var zero models.Report

	if err := EnsureUnpublishable(report); err != nil {
		return zero, err
	}

	now := time.Now().UnixMilli()
	updated, err := s.UpdateById(ctx, report.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":    models.ReportStatusDraft,
			"updatedBy": actor.ID,
			"updatedAt": now,
		},
		Unset: map[string]interface{}{
			"publishedAt": "",
		},
	})
	if err != nil {
		return zero, err
	}

	s.activityLogService.LogReportAction(ctx, actor.ID, &updated,
		"report_unpublish", fmt.Sprintf("Gỡ xuất bản báo cáo: %s", updated.Title),
		models.SeverityHigh, true)

	return updated, nil
}

// UpdateContent cập nhật nội dung báo cáo, append một bản ghi phiên bản mới
// chứa snapshot nội dung sau thay đổi và tính lại wordCount.
// Báo cáo đã lưu trữ không còn sửa được nội dung.
func (s *ReportService) UpdateContent(ctx context.Context, report *models.Report, actor *authmodels.User, content, changeNote string) (models.Report, error) {
	var zero models.Report

	if report.Status == models.ReportStatusArchived {
		return zero, common.NewStateError("Báo cáo đã lưu trữ, không thể sửa nội dung", report.Status)
	}

	now := time.Now().UnixMilli()
	version := models.ReportVersion{
		Content:    content,
		RequestID:  report.RequestID,
		ChangeNote: changeNote,
		ChangedBy:  actor.ID,
		ChangedAt:  now,
	}

	updated, err := s.UpdateById(ctx, report.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"content":   content,
			"wordCount": CountWords(content),
			"updatedBy": actor.ID,
			"updatedAt": now,
		},
		Push: map[string]interface{}{
			"versions": version,
		},
	})
	if err != nil {
		return zero, err
	}

	s.activityLogService.LogReportAction(ctx, actor.ID, &updated,
		"report_update_content", fmt.Sprintf("Cập nhật nội dung báo cáo: %s", updated.Title),
		models.SeverityMedium, false)

	return updated, nil
}

// AddSelfEvaluation ghi đè toàn bộ phần tự đánh giá. Không giữ lịch sử các lần
// tự đánh giá trước; bản mới nhất là bản dùng để xét điều kiện nộp.
func (s *ReportService) AddSelfEvaluation(ctx context.Context, report *models.Report, actor *authmodels.User, content string, score int) (models.Report, error) {
	var zero models.Report

	if report.Status == models.ReportStatusArchived {
		return zero, common.NewStateError("Báo cáo đã lưu trữ, không thể tự đánh giá", report.Status)
	}

	now := time.Now().UnixMilli()
	return s.UpdateById(ctx, report.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"selfEvaluation": models.SelfEvaluation{
				Content:     content,
				Score:       score,
				EvaluatedBy: actor.ID,
				EvaluatedAt: now,
			},
			"updatedBy": actor.ID,
			"updatedAt": now,
		},
	})
}

// AddComment thêm một bình luận đánh giá vào báo cáo.
func (s *ReportService) AddComment(ctx context.Context, report *models.Report, actor *authmodels.User, comment, section, reviewerType string) (models.Report, error) {
	if reviewerType == "" {
		reviewerType = models.ReviewerTypeEvaluator
	}

	now := time.Now().UnixMilli()
	entry := models.ReviewerComment{
		ID:           primitive.NewObjectID(),
		Comment:      comment,
		Section:      section,
		ReviewerID:   actor.ID,
		ReviewerType: reviewerType,
		CommentedAt:  now,
		IsResolved:   false,
	}

	updated, err := s.UpdateById(ctx, report.ID, &basesvc.UpdateData{
		Push: map[string]interface{}{
			"reviewerComments": entry,
		},
		Set: map[string]interface{}{
			"updatedAt": now,
		},
	})
	if err != nil {
		return models.Report{}, err
	}

	s.activityLogService.LogReportAction(ctx, actor.ID, &updated,
		"report_comment", fmt.Sprintf("Thêm bình luận vào báo cáo: %s", updated.Title),
		models.SeverityLow, false)

	return updated, nil
}

// ResolveComment đánh dấu một bình luận là đã xử lý.
// Bình luận không tồn tại → no-op thành công, để hai lần resolve đồng thời
// không làm fail lẫn nhau; caller coi "không tìm thấy" là không nghiêm trọng.
func (s *ReportService) ResolveComment(ctx context.Context, report *models.Report, commentID string) (models.Report, error) {
	objectID, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return *report, nil
	}

	found := false
	for _, comment := range report.ReviewerComments {
		if comment.ID == objectID {
			found = true
			break
		}
	}
	if !found {
		return *report, nil
	}

	now := time.Now().UnixMilli()
	return s.UpdateOne(ctx,
		map[string]interface{}{"_id": report.ID, "reviewerComments._id": objectID},
		&basesvc.UpdateData{
			Set: map[string]interface{}{
				"reviewerComments.$.isResolved": true,
				"updatedAt":                     now,
			},
		}, nil)
}

// IncrementView tăng bộ đếm lượt xem và ghi nhật ký mức thấp.
// Không có quy tắc nghiệp vụ nào chặn thao tác này; chỉ fail khi lỗi lưu trữ.
func (s *ReportService) IncrementView(ctx context.Context, report *models.Report, actor *authmodels.User) error {
	_, err := s.UpdateById(ctx, report.ID, &basesvc.UpdateData{
		Inc: map[string]interface{}{
			"metadata.viewCount": 1,
		},
	})
	if err != nil {
		return err
	}

	s.activityLogService.LogReportAction(ctx, actor.ID, report,
		"report_view", fmt.Sprintf("Xem báo cáo: %s", report.Title),
		models.SeverityLow, false)
	return nil
}

// IncrementDownload tăng bộ đếm lượt tải và ghi nhật ký mức thấp.
func (s *ReportService) IncrementDownload(ctx context.Context, report *models.Report, actor *authmodels.User) error {
	_, err := s.UpdateById(ctx, report.ID, &basesvc.UpdateData{
		Inc: map[string]interface{}{
			"metadata.downloadCount": 1,
		},
	})
	if err != nil {
		return err
	}

	s.activityLogService.LogReportAction(ctx, actor.ID, report,
		"report_download", fmt.Sprintf("Tải báo cáo: %s", report.Title),
		models.SeverityLow, false)
	return nil
}

// AddEvaluation ghi nhận một lượt chấm điểm của chuyên gia: tăng evaluationCount
// và cập nhật điểm trung bình cộng dồn.
func (s *ReportService) AddEvaluation(ctx context.Context, report *models.Report, actor *authmodels.User, score float64) (models.Report, error) {
	count := report.Metadata.EvaluationCount
	newAverage := (report.Metadata.AverageScore*float64(count) + score) / float64(count+1)

	now := time.Now().UnixMilli()
	updated, err := s.UpdateById(ctx, report.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"metadata.averageScore": newAverage,
			"updatedAt":             now,
		},
		Inc: map[string]interface{}{
			"metadata.evaluationCount": 1,
		},
	})
	if err != nil {
		return models.Report{}, err
	}

	s.activityLogService.LogReportAction(ctx, actor.ID, &updated,
		"report_evaluate", fmt.Sprintf("Chấm điểm báo cáo: %s (%.1f)", updated.Title, score),
		models.SeverityMedium, true)

	return updated, nil
}

// LinkEvidence liên kết một minh chứng vào báo cáo.
func (s *ReportService) LinkEvidence(ctx context.Context, report *models.Report, actor *authmodels.User, evidence models.LinkedEvidence) (models.Report, error) {
	var zero models.Report

	if report.Status == models.ReportStatusArchived {
		return zero, common.NewStateError("Báo cáo đã lưu trữ, không thể liên kết minh chứng", report.Status)
	}

	now := time.Now().UnixMilli()
	evidence.LinkedAt = now

	return s.UpdateById(ctx, report.ID, &basesvc.UpdateData{
		Push: map[string]interface{}{
			"linkedEvidences": evidence,
		},
		Set: map[string]interface{}{
			"updatedBy": actor.ID,
			"updatedAt": now,
		},
	})
}

// DeleteReport xóa hẳn báo cáo khỏi hệ thống. Mọi lần xóa đều để lại một bản ghi
// nhật ký mức cao kèm snapshot báo cáo để truy vết.
func (s *ReportService) DeleteReport(ctx context.Context, report *models.Report, actor *authmodels.User) error {
	if err := s.DeleteById(ctx, report.ID); err != nil {
		return err
	}

	s.activityLogService.LogReportAction(ctx, actor.ID, report,
		"report_delete", fmt.Sprintf("Xóa báo cáo: %s (%s)", report.Title, report.Code),
		models.SeverityHigh, true)
	return nil
}

// AssignExpert gán một chuyên gia vào báo cáo với quyền bình luận/chấm điểm tương ứng.
func (s *ReportService) AssignExpert(ctx context.Context, report *models.Report, assigner *authmodels.User, grant models.ExpertGrant) (models.Report, error) {
	grant.AssignedBy = assigner.ID
	grant.AssignedAt = time.Now().UnixMilli()

	return s.UpdateById(ctx, report.ID, &basesvc.UpdateData{
		Push: map[string]interface{}{
			"accessControl.assignedExperts": grant,
		},
	})
}

// AssignAdvisor gán một cố vấn vào báo cáo với quyền bình luận.
func (s *ReportService) AssignAdvisor(ctx context.Context, report *models.Report, assigner *authmodels.User, grant models.AdvisorGrant) (models.Report, error) {
	grant.AssignedBy = assigner.ID
	grant.AssignedAt = time.Now().UnixMilli()

	return s.UpdateById(ctx, report.ID, &basesvc.UpdateData{
		Push: map[string]interface{}{
			"accessControl.advisors": grant,
		},
	})
}
