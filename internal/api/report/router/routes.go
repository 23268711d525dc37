// Package router đăng ký các route thuộc domain báo cáo: báo cáo, yêu cầu viết
// báo cáo, trang đánh giá, thông báo và nhật ký hoạt động.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authmodels "edu_accredit/internal/api/auth/models"
	"edu_accredit/internal/api/middleware"
	reporthdl "edu_accredit/internal/api/report/handler"
	apirouter "edu_accredit/internal/api/router"
)

// Register đăng ký tất cả route domain báo cáo lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerReportRoutes(v1, r); err != nil {
		return err
	}
	if err := registerReportRequestRoutes(v1, r); err != nil {
		return err
	}
	if err := registerNotificationRoutes(v1); err != nil {
		return err
	}
	if err := registerActivityLogRoutes(v1, r); err != nil {
		return err
	}
	return nil
}

func registerReportRoutes(router fiber.Router, r *apirouter.Router) error {
	reportHandler, err := reporthdl.NewReportHandler()
	if err != nil {
		return fmt.Errorf("failed to create report handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()
	viewMiddleware := middleware.ReportViewPermission()
	editMiddleware := middleware.ReportEditPermission()
	commentMiddleware := middleware.ReportCommentPermission()
	evaluateMiddleware := middleware.ReportEvaluatePermission()
	publishMiddleware := middleware.RequireRoles(authmodels.RoleAdmin, authmodels.RoleManager)

	// Trang đánh giá: danh sách và thống kê báo cáo đã xuất bản.
	// Đăng ký trước các route /:id để Fiber không nuốt path tĩnh.
	apirouter.RegisterRouteWithMiddleware(router, "/reports", "GET", "/assessment", []fiber.Handler{authMiddleware}, reportHandler.HandleAssessmentList)
	apirouter.RegisterRouteWithMiddleware(router, "/reports", "GET", "/statistics", []fiber.Handler{authMiddleware}, reportHandler.HandleAssessmentStatistics)
	apirouter.RegisterRouteWithMiddleware(router, "/reports", "GET", "/assessment/:id", []fiber.Handler{authMiddleware}, reportHandler.HandleAssessmentDetail)

	// CRUD giới hạn: không mở route đọc generic để báo cáo nháp không lộ ra
	// ngoài phạm vi canView. Đọc chi tiết đi qua middleware phân quyền bên dưới,
	// danh sách của riêng người tạo đi qua /mine.
	reportCRUDConfig := apirouter.CRUDConfig{
		InsOne: true,
		Count:  true, Exists: true,
	}
	r.RegisterCRUDRoutes(router, "/report", reportHandler, reportCRUDConfig,
		authmodels.RoleAdmin, authmodels.RoleManager, authmodels.RoleExpert)

	apirouter.RegisterRouteWithMiddleware(router, "/report", "GET", "/mine", []fiber.Handler{authMiddleware}, reportHandler.HandleListMine)
	apirouter.RegisterRouteWithMiddleware(router, "/report", "GET", "/find-by-id/:id", []fiber.Handler{authMiddleware, viewMiddleware}, reportHandler.FindOneById)

	// Sửa và xóa theo id đứng sau middleware quyền sửa: chỉ admin hoặc người tạo
	// đi qua được, vai trò đơn thuần là chưa đủ. Xóa luôn ghi nhật ký hoạt động.
	apirouter.RegisterRouteWithMiddleware(router, "/report", "PUT", "/update-by-id/:id", []fiber.Handler{authMiddleware, editMiddleware}, reportHandler.UpdateById)
	apirouter.RegisterRouteWithMiddleware(router, "/report", "DELETE", "/delete-by-id/:id", []fiber.Handler{authMiddleware, editMiddleware}, reportHandler.DeleteById)

	// Các thao tác vòng đời, mỗi thao tác đứng sau middleware phân quyền tương ứng.
	apirouter.RegisterRouteWithMiddleware(router, "/report", "POST", "/:id/submit", []fiber.Handler{authMiddleware, editMiddleware}, reportHandler.HandleSubmit)
	apirouter.RegisterRouteWithMiddleware(router, "/report", "POST", "/:id/publish", []fiber.Handler{authMiddleware, publishMiddleware, viewMiddleware}, reportHandler.HandlePublish)
	apirouter.RegisterRouteWithMiddleware(router, "/report", "POST", "/:id/unpublish", []fiber.Handler{authMiddleware, publishMiddleware, viewMiddleware}, reportHandler.HandleUnpublish)
	apirouter.RegisterRouteWithMiddleware(router, "/report", "PUT", "/:id/content", []fiber.Handler{authMiddleware, editMiddleware}, reportHandler.HandleUpdateContent)
	apirouter.RegisterRouteWithMiddleware(router, "/report", "PUT", "/:id/self-evaluation", []fiber.Handler{authMiddleware, editMiddleware}, reportHandler.HandleAddSelfEvaluation)
	apirouter.RegisterRouteWithMiddleware(router, "/report", "POST", "/:id/comments", []fiber.Handler{authMiddleware, commentMiddleware}, reportHandler.HandleAddComment)
	apirouter.RegisterRouteWithMiddleware(router, "/report", "POST", "/:id/comments/resolve", []fiber.Handler{authMiddleware, commentMiddleware}, reportHandler.HandleResolveComment)
	apirouter.RegisterRouteWithMiddleware(router, "/report", "POST", "/:id/view", []fiber.Handler{authMiddleware, viewMiddleware}, reportHandler.HandleIncrementView)
	apirouter.RegisterRouteWithMiddleware(router, "/report", "POST", "/:id/download", []fiber.Handler{authMiddleware, viewMiddleware}, reportHandler.HandleIncrementDownload)
	apirouter.RegisterRouteWithMiddleware(router, "/report", "POST", "/:id/evidences", []fiber.Handler{authMiddleware, editMiddleware}, reportHandler.HandleLinkEvidence)
	apirouter.RegisterRouteWithMiddleware(router, "/report", "POST", "/:id/evaluations", []fiber.Handler{authMiddleware, evaluateMiddleware}, reportHandler.HandleAddEvaluation)
	apirouter.RegisterRouteWithMiddleware(router, "/report", "POST", "/:id/experts", []fiber.Handler{authMiddleware, publishMiddleware, viewMiddleware}, reportHandler.HandleAssignExpert)
	apirouter.RegisterRouteWithMiddleware(router, "/report", "POST", "/:id/advisors", []fiber.Handler{authMiddleware, publishMiddleware, viewMiddleware}, reportHandler.HandleAssignAdvisor)

	return nil
}

func registerReportRequestRoutes(router fiber.Router, r *apirouter.Router) error {
	requestHandler, err := reporthdl.NewReportRequestHandler()
	if err != nil {
		return fmt.Errorf("failed to create report request handler: %w", err)
	}

	// Tạo/sửa/xóa yêu cầu chỉ dành cho admin và manager. InsertOne được ghi đè
	// để kiểm tra vai trò và gửi thông báo cho người được giao; UpdateById được
	// ghi đè để chặn chỉnh sửa yêu cầu đã rời trạng thái chờ. Không mở route đọc
	// generic: danh sách đi qua /mine theo phạm vi vai trò, chi tiết đi qua
	// /find-by-id với kiểm tra các bên liên quan.
	requestCRUDConfig := apirouter.CRUDConfig{
		InsOne: true, UpdById: true, DelById: true,
		Count: true, Exists: true,
	}
	r.RegisterCRUDRoutes(router, "/report-request", requestHandler, requestCRUDConfig,
		authmodels.RoleAdmin, authmodels.RoleManager)

	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(router, "/report-request", "GET", "/mine", []fiber.Handler{authMiddleware}, requestHandler.HandleListMine)
	apirouter.RegisterRouteWithMiddleware(router, "/report-request", "GET", "/find-by-id/:id", []fiber.Handler{authMiddleware}, requestHandler.HandleDetail)

	// Accept/reject/start do người được giao gọi; quyền assignee kiểm tra ở service.
	apirouter.RegisterRouteWithMiddleware(router, "/report-request", "POST", "/:id/accept", []fiber.Handler{authMiddleware}, requestHandler.HandleAccept)
	apirouter.RegisterRouteWithMiddleware(router, "/report-request", "POST", "/:id/reject", []fiber.Handler{authMiddleware}, requestHandler.HandleReject)
	apirouter.RegisterRouteWithMiddleware(router, "/report-request", "POST", "/:id/start", []fiber.Handler{authMiddleware}, requestHandler.HandleMarkInProgress)

	return nil
}

func registerNotificationRoutes(router fiber.Router) error {
	notificationHandler, err := reporthdl.NewNotificationHandler()
	if err != nil {
		return fmt.Errorf("failed to create notification handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(router, "/notification", "GET", "/", []fiber.Handler{authMiddleware}, notificationHandler.HandleListMine)
	apirouter.RegisterRouteWithMiddleware(router, "/notification", "PUT", "/:id/read", []fiber.Handler{authMiddleware}, notificationHandler.HandleMarkRead)

	return nil
}

func registerActivityLogRoutes(router fiber.Router, r *apirouter.Router) error {
	activityLogHandler, err := reporthdl.NewActivityLogHandler()
	if err != nil {
		return fmt.Errorf("failed to create activity log handler: %w", err)
	}

	// Nhật ký hoạt động chỉ đọc, dành cho admin và giám sát viên.
	authMiddleware := middleware.AuthMiddleware()
	auditMiddleware := middleware.RequireRoles(authmodels.RoleAdmin, authmodels.RoleSupervisor)
	apirouter.RegisterRouteWithMiddleware(router, "/activity-log", "GET", "/", []fiber.Handler{authMiddleware, auditMiddleware}, activityLogHandler.FindWithPagination)
	apirouter.RegisterRouteWithMiddleware(router, "/activity-log", "GET", "/:id", []fiber.Handler{authMiddleware, auditMiddleware}, activityLogHandler.FindOneById)

	return nil
}
