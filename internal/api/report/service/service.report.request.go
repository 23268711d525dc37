package reportsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "edu_accredit/internal/api/auth/models"
	authsvc "edu_accredit/internal/api/auth/service"
	basesvc "edu_accredit/internal/api/base/service"
	models "edu_accredit/internal/api/report/models"
	"edu_accredit/internal/common"
	"edu_accredit/internal/global"
)

// ReportRequestService quản lý vòng đời yêu cầu viết báo cáo:
// pending → accepted → in_progress → completed, với nhánh rejected từ pending/accepted.
type ReportRequestService struct {
	*basesvc.BaseServiceMongoImpl[models.ReportRequest]
	userService         *authsvc.UserService
	notificationService *NotificationService
	activityLogService  *ActivityLogService
}

// NewReportRequestService tạo mới ReportRequestService
func NewReportRequestService() (*ReportRequestService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ReportRequests)
	if !exist {
		return nil, fmt.Errorf("failed to get report_requests collection: %v", common.ErrNotFound)
	}
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, err
	}
	notificationService, err := NewNotificationService()
	if err != nil {
		return nil, err
	}
	activityLogService, err := NewActivityLogService()
	if err != nil {
		return nil, err
	}
	return &ReportRequestService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ReportRequest](collection),
		userService:          userService,
		notificationService:  notificationService,
		activityLogService:   activityLogService,
	}, nil
}

// ValidateTypeReferences kiểm tra ràng buộc tiêu chuẩn/tiêu chí theo loại báo cáo.
// Quy tắc dùng chung cho cả báo cáo và yêu cầu viết báo cáo:
//   - criteria_analysis bắt buộc có criteriaId
//   - standard_analysis bắt buộc có standardId
//   - comprehensive_report không bắt buộc cả hai
//   - có criteriaId mà thiếu standardId luôn không hợp lệ, bất kể loại
func ValidateTypeReferences(reportType string, standardID, criteriaID primitive.ObjectID) error {
	if !models.IsValidReportType(reportType) {
		return common.NewValidationError("Loại báo cáo không hợp lệ")
	}
	if !criteriaID.IsZero() && standardID.IsZero() {
		return common.NewValidationError("Tiêu chí phải thuộc về một tiêu chuẩn, không thể chọn tiêu chí mà thiếu tiêu chuẩn")
	}
	switch reportType {
	case models.ReportTypeCriteriaAnalysis:
		if criteriaID.IsZero() {
			return common.NewValidationError("Phiếu phân tích tiêu chí bắt buộc phải chọn tiêu chí")
		}
	case models.ReportTypeStandardAnalysis:
		if standardID.IsZero() {
			return common.NewValidationError("Phiếu phân tích tiêu chuẩn bắt buộc phải chọn tiêu chuẩn")
		}
	}
	return nil
}

// AssignmentNotifyPriority ánh xạ độ ưu tiên của yêu cầu sang độ ưu tiên của
// thông báo giao việc: yêu cầu khẩn cấp đẩy thông báo lên mức cao, còn lại mức thường.
func AssignmentNotifyPriority(requestPriority string) string {
	if requestPriority == models.PriorityUrgent {
		return models.PriorityHigh
	}
	return models.PriorityNormal
}

// EnsureRequestEditable chặn chỉnh sửa trực tiếp yêu cầu đã rời trạng thái chờ.
// Yêu cầu đã nhận thuộc quyền người viết; completed và rejected là bất biến.
func EnsureRequestEditable(request *models.ReportRequest) error {
	if request.Status != models.RequestStatusPending {
		return common.NewStateError("Chỉ chỉnh sửa được yêu cầu đang ở trạng thái chờ", request.Status)
	}
	return nil
}

// CanViewRequest kiểm tra người dùng có phải một bên của yêu cầu không:
// admin, người tạo hoặc người được giao.
func CanViewRequest(user *authmodels.User, request *models.ReportRequest) bool {
	if user.IsAdmin() {
		return true
	}
	return request.CreatedBy == user.ID || request.AssignedTo == user.ID
}

// RequestScopeFilter trả về filter giới hạn danh sách yêu cầu theo vai trò:
// admin thấy tất cả, manager thấy yêu cầu mình tạo hoặc được giao,
// các vai trò còn lại chỉ thấy yêu cầu được giao cho mình.
func RequestScopeFilter(user *authmodels.User) map[string]interface{} {
	if user.IsAdmin() {
		return map[string]interface{}{}
	}
	if user.HasRole(authmodels.RoleManager) {
		return map[string]interface{}{
			"$or": []map[string]interface{}{
				{"createdBy": user.ID},
				{"assignedTo": user.ID},
			},
		}
	}
	return map[string]interface{}{"assignedTo": user.ID}
}

// Create tạo yêu cầu viết báo cáo mới ở trạng thái pending và gửi thông báo
// cho người được giao. Chỉ admin và manager được tạo yêu cầu; người được giao
// phải giữ vai trò chuyên gia (người viết báo cáo).
func (s *ReportRequestService) Create(ctx context.Context, creator *authmodels.User, request models.ReportRequest) (models.ReportRequest, error) {
	var zero models.ReportRequest

	if !creator.HasRole(authmodels.RoleAdmin, authmodels.RoleManager) {
		return zero, common.NewPermissionError("Chỉ quản trị viên và quản lý được tạo yêu cầu viết báo cáo")
	}

	if err := ValidateTypeReferences(request.Type, request.StandardID, request.CriteriaID); err != nil {
		return zero, err
	}

	assignee, err := s.userService.FindOneById(ctx, request.AssignedTo)
	if err != nil {
		return zero, common.NewValidationError("Người được giao không tồn tại trong hệ thống")
	}
	if assignee.Role != authmodels.RoleExpert {
		return zero, common.NewValidationError("Người được giao phải giữ vai trò chuyên gia viết báo cáo")
	}

	now := time.Now().UnixMilli()
	request.Status = models.RequestStatusPending
	if request.Priority == "" {
		request.Priority = models.PriorityNormal
	}
	request.CreatedBy = creator.ID
	request.CreatedAt = now
	request.UpdatedAt = now

	created, err := s.InsertOne(ctx, request)
	if err != nil {
		return zero, err
	}

	s.notificationService.Notify(ctx, models.Notification{
		RecipientID: created.AssignedTo,
		SenderID:    creator.ID,
		Type:        models.NotificationTypeReportRequest,
		Title:       "Yêu cầu viết báo cáo mới",
		Message:     fmt.Sprintf("Bạn được giao viết báo cáo: %s", created.Title),
		Data: map[string]interface{}{
			"requestId": created.ID.Hex(),
			"deadline":  created.Deadline,
		},
		Priority: AssignmentNotifyPriority(created.Priority),
	})

	s.activityLogService.LogActivity(ctx, models.ActivityLog{
		UserID:         creator.ID,
		AcademicYearID: created.AcademicYearID,
		Action:         "report_request_create",
		Description:    fmt.Sprintf("Tạo yêu cầu viết báo cáo: %s", created.Title),
		TargetType:     "report_request",
		TargetID:       created.ID,
		TargetName:     created.Title,
		Severity:       models.SeverityMedium,
	})

	return created, nil
}

// Accept chuyển yêu cầu từ pending sang accepted.
// Kiểm tra quyền trước kiểm tra trạng thái: người không phải assignee luôn nhận
// PermissionError bất kể yêu cầu đang ở trạng thái nào.
func (s *ReportRequestService) Accept(ctx context.Context, request *models.ReportRequest, actor *authmodels.User) (models.ReportRequest, error) {
	var zero models.ReportRequest

	if request.AssignedTo != actor.ID {
		return zero, common.NewPermissionError("Chỉ người được giao mới có quyền nhận yêu cầu này")
	}
	if request.Status != models.RequestStatusPending {
		return zero, common.NewStateError("Chỉ nhận được yêu cầu đang ở trạng thái chờ", request.Status)
	}

	now := time.Now().UnixMilli()
	updated, err := s.UpdateById(ctx, request.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":     models.RequestStatusAccepted,
			"acceptedAt": now,
			"updatedAt":  now,
		},
	})
	if err != nil {
		return zero, err
	}

	s.notificationService.Notify(ctx, models.Notification{
		RecipientID: request.CreatedBy,
		SenderID:    actor.ID,
		Type:        models.NotificationTypeRequestAccepted,
		Title:       "Yêu cầu viết báo cáo được chấp nhận",
		Message:     fmt.Sprintf("%s đã nhận yêu cầu: %s", actor.Name, request.Title),
		Data:        map[string]interface{}{"requestId": request.ID.Hex()},
	})

	return updated, nil
}

// Reject chuyển yêu cầu từ pending hoặc accepted sang rejected kèm lý do từ chối.
func (s *ReportRequestService) Reject(ctx context.Context, request *models.ReportRequest, actor *authmodels.User, responseNote string) (models.ReportRequest, error) {
	var zero models.ReportRequest

	if request.AssignedTo != actor.ID {
		return zero, common.NewPermissionError("Chỉ người được giao mới có quyền từ chối yêu cầu này")
	}
	if request.Status != models.RequestStatusPending && request.Status != models.RequestStatusAccepted {
		return zero, common.NewStateError("Chỉ từ chối được yêu cầu đang chờ hoặc đã nhận", request.Status)
	}

	now := time.Now().UnixMilli()
	updated, err := s.UpdateById(ctx, request.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":       models.RequestStatusRejected,
			"responseNote": responseNote,
			"rejectedAt":   now,
			"updatedAt":    now,
		},
	})
	if err != nil {
		return zero, err
	}

	s.notificationService.Notify(ctx, models.Notification{
		RecipientID: request.CreatedBy,
		SenderID:    actor.ID,
		Type:        models.NotificationTypeRequestRejected,
		Title:       "Yêu cầu viết báo cáo bị từ chối",
		Message:     fmt.Sprintf("%s đã từ chối yêu cầu: %s. Lý do: %s", actor.Name, request.Title, responseNote),
		Data:        map[string]interface{}{"requestId": request.ID.Hex()},
	})

	return updated, nil
}

// MarkInProgress chuyển yêu cầu từ accepted sang in_progress khi người viết bắt đầu làm việc.
func (s *ReportRequestService) MarkInProgress(ctx context.Context, request *models.ReportRequest) (models.ReportRequest, error) {
	var zero models.ReportRequest

	if request.Status != models.RequestStatusAccepted {
		return zero, common.NewStateError("Chỉ bắt đầu được yêu cầu đã nhận", request.Status)
	}

	now := time.Now().UnixMilli()
	return s.UpdateById(ctx, request.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":    models.RequestStatusInProgress,
			"updatedAt": now,
		},
	})
}

// Complete chuyển yêu cầu sang completed và gắn báo cáo kết quả.
// Chỉ được gọi bởi engine vòng đời báo cáo tại thời điểm nộp báo cáo,
// không bao giờ qua thao tác trực tiếp của người dùng. Idempotent: yêu cầu
// đã completed thì gọi lại là no-op thành công, phục vụ retry an toàn.
func (s *ReportRequestService) Complete(ctx context.Context, requestID, reportID primitive.ObjectID) error {
	request, err := s.FindOneById(ctx, requestID)
	if err != nil {
		return err
	}

	if request.Status == models.RequestStatusCompleted {
		return nil
	}

	now := time.Now().UnixMilli()
	_, err = s.UpdateById(ctx, requestID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":      models.RequestStatusCompleted,
			"reportId":    reportID,
			"completedAt": now,
			"updatedAt":   now,
		},
	})
	if err != nil {
		return err
	}

	s.notificationService.Notify(ctx, models.Notification{
		RecipientID: request.CreatedBy,
		SenderID:    request.AssignedTo,
		Type:        models.NotificationTypeRequestCompleted,
		Title:       "Yêu cầu viết báo cáo đã hoàn thành",
		Message:     fmt.Sprintf("Báo cáo cho yêu cầu \"%s\" đã được nộp", request.Title),
		Data: map[string]interface{}{
			"requestId": requestID.Hex(),
			"reportId":  reportID.Hex(),
		},
	})

	return nil
}
