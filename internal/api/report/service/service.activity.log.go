package reportsvc

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "edu_accredit/internal/api/base/service"
	models "edu_accredit/internal/api/report/models"
	"edu_accredit/internal/common"
	"edu_accredit/internal/global"
)

// ActivityLogService ghi nhật ký hoạt động, append-only.
type ActivityLogService struct {
	*basesvc.BaseServiceMongoImpl[models.ActivityLog]
}

// NewActivityLogService tạo mới ActivityLogService
func NewActivityLogService() (*ActivityLogService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ActivityLogs)
	if !exist {
		return nil, fmt.Errorf("failed to get activity_logs collection: %v", common.ErrNotFound)
	}
	return &ActivityLogService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ActivityLog](collection),
	}, nil
}

// LogActivity ghi một bản ghi nhật ký. Best-effort: lỗi khi ghi chỉ được log
// lại qua logrus, không bao giờ trả về cho thao tác chính.
func (s *ActivityLogService) LogActivity(ctx context.Context, entry models.ActivityLog) {
	if entry.Severity == "" {
		entry.Severity = models.SeverityLow
	}
	entry.CreatedAt = time.Now().UnixMilli()

	if _, err := s.InsertOne(ctx, entry); err != nil {
		logrus.WithFields(logrus.Fields{
			"action":   entry.Action,
			"targetId": entry.TargetID.Hex(),
			"error":    err.Error(),
		}).Warn("Ghi nhật ký hoạt động thất bại")
	}
}

// LogReportAction ghi nhật ký cho một thao tác trên báo cáo.
func (s *ActivityLogService) LogReportAction(ctx context.Context, userID primitive.ObjectID, report *models.Report, action, description, severity string, auditRequired bool) {
	s.LogActivity(ctx, models.ActivityLog{
		UserID:          userID,
		AcademicYearID:  report.AcademicYearID,
		Action:          action,
		Description:     description,
		TargetType:      "report",
		TargetID:        report.ID,
		TargetName:      report.Title,
		Severity:        severity,
		IsAuditRequired: auditRequired,
	})
}
