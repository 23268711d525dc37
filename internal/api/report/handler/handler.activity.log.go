package reporthdl

import (
	"fmt"

	basehdl "edu_accredit/internal/api/base/handler"
	models "edu_accredit/internal/api/report/models"
	reportsvc "edu_accredit/internal/api/report/service"
)

// ActivityLogHandler xử lý các request đọc nhật ký hoạt động.
// Nhật ký là append-only: chỉ có route đọc, không có route ghi hay xóa.
type ActivityLogHandler struct {
	*basehdl.BaseHandler[models.ActivityLog, interface{}, interface{}]
}

// NewActivityLogHandler tạo instance mới của ActivityLogHandler
func NewActivityLogHandler() (*ActivityLogHandler, error) {
	service, err := reportsvc.NewActivityLogService()
	if err != nil {
		return nil, fmt.Errorf("failed to create activity log service: %v", err)
	}
	return &ActivityLogHandler{
		BaseHandler: basehdl.NewBaseHandler[models.ActivityLog, interface{}, interface{}](service),
	}, nil
}
