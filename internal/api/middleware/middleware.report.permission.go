package middleware

import (
	"sync"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "edu_accredit/internal/api/auth/models"
	reportmodels "edu_accredit/internal/api/report/models"
	reportsvc "edu_accredit/internal/api/report/service"
	"edu_accredit/internal/common"
)

// ReportPermissionManager resolve báo cáo theo {id, academicYearId} và kiểm tra
// quyền của người dùng trước khi handler vòng đời được gọi. Engine vòng đời
// không kiểm tra quyền lại; mọi phân quyền tập trung tại đây.
type ReportPermissionManager struct {
	ReportService *reportsvc.ReportService
}

var (
	reportPermissionManager     *ReportPermissionManager
	onceReportPermissionManager sync.Once
)

// GetReportPermissionManager trả về singleton ReportPermissionManager
func GetReportPermissionManager() *ReportPermissionManager {
	onceReportPermissionManager.Do(func() {
		reportService, err := reportsvc.NewReportService()
		if err != nil {
			logrus.WithError(err).Panic("Không khởi tạo được ReportPermissionManager")
		}
		reportPermissionManager = &ReportPermissionManager{ReportService: reportService}
	})
	return reportPermissionManager
}

// resolveReport tìm báo cáo theo id trên URL, giới hạn trong năm học nếu
// academicYearId được truyền kèm. Không tìm thấy trong phạm vi năm học → 404,
// không phân biệt báo cáo không tồn tại hay thuộc năm học khác.
func (m *ReportPermissionManager) resolveReport(c fiber.Ctx) (*reportmodels.Report, error) {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return nil, common.NewValidationError("ID báo cáo không hợp lệ")
	}

	filter := bson.M{"_id": id}
	if yearParam := c.Query("academicYearId"); yearParam != "" {
		yearID, err := primitive.ObjectIDFromHex(yearParam)
		if err != nil {
			return nil, common.NewValidationError("ID năm học không hợp lệ")
		}
		filter["academicYearId"] = yearID
	}

	report, err := m.ReportService.FindOne(c.Context(), filter, nil)
	if err != nil {
		return nil, common.NewError(common.ErrCodeDatabaseQuery,
			"Không tìm thấy báo cáo trong năm học này", common.StatusNotFound, nil)
	}

	return &report, nil
}

// checkPermission resolve báo cáo, chạy hàm kiểm tra quyền rồi gắn báo cáo vào
// context cho handler phía sau. Người không có quyền xem nhận 404 thay vì 403
// để không lộ sự tồn tại của báo cáo.
func (m *ReportPermissionManager) checkPermission(c fiber.Ctx, allowed func(*ReportActor) bool) error {
	user := GetUserFromContext(c)
	if user == nil {
		HandleErrorResponse(c, common.ErrTokenInvalid)
		return nil
	}

	report, err := m.resolveReport(c)
	if err != nil {
		HandleErrorResponse(c, err)
		return nil
	}

	actor := &ReportActor{User: user, Report: report}
	if !reportsvc.CanViewReport(user, report) {
		HandleErrorResponse(c, common.NewError(common.ErrCodeDatabaseQuery,
			"Không tìm thấy báo cáo trong năm học này", common.StatusNotFound, nil))
		return nil
	}
	if !allowed(actor) {
		HandleErrorResponse(c, common.NewPermissionError("Bạn không có quyền thực hiện thao tác này trên báo cáo"))
		return nil
	}

	c.Locals("report", report)
	return c.Next()
}

// ReportActor gói người dùng và báo cáo đã resolve cho một lần kiểm tra quyền.
type ReportActor struct {
	User   *authmodels.User
	Report *reportmodels.Report
}

// ReportViewPermission cho qua khi người dùng có quyền xem báo cáo.
func ReportViewPermission() fiber.Handler {
	manager := GetReportPermissionManager()
	return func(c fiber.Ctx) error {
		return manager.checkPermission(c, func(actor *ReportActor) bool {
			return true
		})
	}
}

// ReportEditPermission cho qua khi người dùng có quyền sửa báo cáo (admin hoặc người tạo).
func ReportEditPermission() fiber.Handler {
	manager := GetReportPermissionManager()
	return func(c fiber.Ctx) error {
		return manager.checkPermission(c, func(actor *ReportActor) bool {
			return reportsvc.CanEditReport(actor.User, actor.Report)
		})
	}
}

// ReportCommentPermission cho qua khi người dùng có quyền bình luận trên báo cáo.
func ReportCommentPermission() fiber.Handler {
	manager := GetReportPermissionManager()
	return func(c fiber.Ctx) error {
		return manager.checkPermission(c, func(actor *ReportActor) bool {
			return reportsvc.CanCommentReport(actor.User, actor.Report)
		})
	}
}

// ReportEvaluatePermission cho qua khi người dùng có quyền chấm điểm báo cáo.
func ReportEvaluatePermission() fiber.Handler {
	manager := GetReportPermissionManager()
	return func(c fiber.Ctx) error {
		return manager.checkPermission(c, func(actor *ReportActor) bool {
			return reportsvc.CanEvaluateReport(actor.User, actor.Report)
		})
	}
}

// GetReportFromContext lấy báo cáo đã được middleware phân quyền resolve.
func GetReportFromContext(c fiber.Ctx) *reportmodels.Report {
	report, ok := c.Locals("report").(*reportmodels.Report)
	if !ok {
		return nil
	}
	return report
}
