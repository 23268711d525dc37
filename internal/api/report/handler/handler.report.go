// Package reporthdl - handler HTTP cho domain báo cáo.
package reporthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "edu_accredit/internal/api/base/handler"
	"edu_accredit/internal/api/middleware"
	reportdto "edu_accredit/internal/api/report/dto"
	models "edu_accredit/internal/api/report/models"
	reportsvc "edu_accredit/internal/api/report/service"
	"edu_accredit/internal/common"
	"edu_accredit/internal/logger"
)

// ReportHandler xử lý các request CRUD và vòng đời cho báo cáo.
// Các endpoint vòng đời yêu cầu middleware phân quyền đã resolve báo cáo
// và gắn vào context trước khi handler chạy.
type ReportHandler struct {
	*basehdl.BaseHandler[models.Report, reportdto.ReportCreateInput, reportdto.ReportUpdateInput]
	reportService *reportsvc.ReportService
}

// NewReportHandler tạo instance mới của ReportHandler
func NewReportHandler() (*ReportHandler, error) {
	service, err := reportsvc.NewReportService()
	if err != nil {
		return nil, fmt.Errorf("failed to create report service: %v", err)
	}
	return &ReportHandler{
		BaseHandler:   basehdl.NewBaseHandler[models.Report, reportdto.ReportCreateInput, reportdto.ReportUpdateInput](service),
		reportService: service,
	}, nil
}

// resolveActors lấy người dùng và báo cáo đã được middleware gắn vào context.
func (h *ReportHandler) resolveActors(c fiber.Ctx) (*models.Report, error) {
	report := middleware.GetReportFromContext(c)
	if report == nil {
		return nil, common.ErrNotFound
	}
	return report, nil
}

// InsertOne tạo báo cáo mới. Ghi đè handler CRUD mặc định để mã báo cáo
// được hệ thống sinh và createdBy lấy từ người dùng đang đăng nhập.
func (h *ReportHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		user := middleware.GetUserFromContext(c)
		if user == nil {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		input := new(reportdto.ReportCreateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		model, err := h.TransformCreateInputToModel(input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		created, err := h.reportService.CreateReport(c.Context(), *model, user)
		if err == nil {
			logger.LogLifecycle("report_create", "report", created.ID.Hex(), c, map[string]interface{}{
				"code": created.Code,
			})
		}
		h.HandleResponse(c, created, err)
		return nil
	})
}

// DeleteById xóa báo cáo. Ghi đè handler CRUD mặc định: middleware phân quyền
// sửa đã resolve báo cáo và xác nhận người gọi là admin hoặc người tạo, việc
// xóa đi qua service để luôn kèm một bản ghi nhật ký hoạt động.
func (h *ReportHandler) DeleteById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		report, err := h.resolveActors(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user := middleware.GetUserFromContext(c)

		err = h.reportService.DeleteReport(c.Context(), report, user)
		if err == nil {
			logger.LogLifecycle("report_delete", "report", report.ID.Hex(), c, map[string]interface{}{
				"code": report.Code,
			})
		}
		h.HandleResponse(c, fiber.Map{"reportId": report.ID.Hex()}, err)
		return nil
	})
}

// HandleSubmit nộp báo cáo: draft → submitted.
func (h *ReportHandler) HandleSubmit(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		report, err := h.resolveActors(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user := middleware.GetUserFromContext(c)

		updated, err := h.reportService.Submit(c.Context(), report, user)
		if err == nil {
			logger.LogLifecycle("report_submit", "report", report.ID.Hex(), c, nil)
		}
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandlePublish xuất bản báo cáo.
func (h *ReportHandler) HandlePublish(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		report, err := h.resolveActors(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user := middleware.GetUserFromContext(c)

		updated, err := h.reportService.Publish(c.Context(), report, user)
		if err == nil {
			logger.LogLifecycle("report_publish", "report", report.ID.Hex(), c, nil)
		}
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleUnpublish gỡ xuất bản báo cáo: published → draft.
func (h *ReportHandler) HandleUnpublish(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		report, err := h.resolveActors(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user := middleware.GetUserFromContext(c)

		updated, err := h.reportService.Unpublish(c.Context(), report, user)
		if err == nil {
			logger.LogLifecycle("report_unpublish", "report", report.ID.Hex(), c, nil)
		}
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleUpdateContent cập nhật nội dung báo cáo kèm ghi phiên bản mới.
func (h *ReportHandler) HandleUpdateContent(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		report, err := h.resolveActors(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user := middleware.GetUserFromContext(c)

		input := new(reportdto.ReportContentInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updated, err := h.reportService.UpdateContent(c.Context(), report, user, input.Content, input.ChangeNote)
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleAddSelfEvaluation ghi đè phần tự đánh giá của báo cáo.
func (h *ReportHandler) HandleAddSelfEvaluation(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		report, err := h.resolveActors(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user := middleware.GetUserFromContext(c)

		input := new(reportdto.SelfEvaluationInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updated, err := h.reportService.AddSelfEvaluation(c.Context(), report, user, input.Content, input.Score)
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleAddComment thêm bình luận đánh giá vào báo cáo.
func (h *ReportHandler) HandleAddComment(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		report, err := h.resolveActors(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user := middleware.GetUserFromContext(c)

		input := new(reportdto.ReportCommentInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updated, err := h.reportService.AddComment(c.Context(), report, user, input.Comment, input.Section, input.ReviewerType)
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleResolveComment đánh dấu một bình luận đã xử lý. Bình luận không tồn tại
// vẫn trả về thành công.
func (h *ReportHandler) HandleResolveComment(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		report, err := h.resolveActors(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(reportdto.ResolveCommentInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updated, err := h.reportService.ResolveComment(c.Context(), report, input.CommentID)
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleIncrementView tăng bộ đếm lượt xem.
func (h *ReportHandler) HandleIncrementView(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		report, err := h.resolveActors(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user := middleware.GetUserFromContext(c)

		err = h.reportService.IncrementView(c.Context(), report, user)
		h.HandleResponse(c, fiber.Map{"reportId": report.ID.Hex()}, err)
		return nil
	})
}

// HandleIncrementDownload tăng bộ đếm lượt tải.
func (h *ReportHandler) HandleIncrementDownload(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		report, err := h.resolveActors(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user := middleware.GetUserFromContext(c)

		err = h.reportService.IncrementDownload(c.Context(), report, user)
		h.HandleResponse(c, fiber.Map{"reportId": report.ID.Hex()}, err)
		return nil
	})
}

// HandleLinkEvidence liên kết minh chứng vào báo cáo.
func (h *ReportHandler) HandleLinkEvidence(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		report, err := h.resolveActors(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user := middleware.GetUserFromContext(c)

		input := new(reportdto.LinkEvidenceInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		evidenceID, err := primitive.ObjectIDFromHex(input.EvidenceID)
		if err != nil {
			h.HandleResponse(c, nil, common.NewValidationError("ID minh chứng không hợp lệ"))
			return nil
		}

		updated, err := h.reportService.LinkEvidence(c.Context(), report, user, models.LinkedEvidence{
			EvidenceID:    evidenceID,
			SelectedFiles: input.SelectedFiles,
			ContextText:   input.ContextText,
		})
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleAddEvaluation ghi nhận lượt chấm điểm của chuyên gia.
func (h *ReportHandler) HandleAddEvaluation(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		report, err := h.resolveActors(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user := middleware.GetUserFromContext(c)

		input := new(reportdto.ReportEvaluationInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updated, err := h.reportService.AddEvaluation(c.Context(), report, user, input.Score)
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleAssignExpert gán chuyên gia vào báo cáo.
func (h *ReportHandler) HandleAssignExpert(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		report, err := h.resolveActors(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user := middleware.GetUserFromContext(c)

		input := new(reportdto.AssignExpertInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		expertID, err := primitive.ObjectIDFromHex(input.ExpertID)
		if err != nil {
			h.HandleResponse(c, nil, common.NewValidationError("ID chuyên gia không hợp lệ"))
			return nil
		}

		updated, err := h.reportService.AssignExpert(c.Context(), report, user, models.ExpertGrant{
			ExpertID:    expertID,
			CanComment:  input.CanComment,
			CanEvaluate: input.CanEvaluate,
		})
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleAssignAdvisor gán cố vấn vào báo cáo.
func (h *ReportHandler) HandleAssignAdvisor(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		report, err := h.resolveActors(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user := middleware.GetUserFromContext(c)

		input := new(reportdto.AssignAdvisorInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		advisorID, err := primitive.ObjectIDFromHex(input.AdvisorID)
		if err != nil {
			h.HandleResponse(c, nil, common.NewValidationError("ID cố vấn không hợp lệ"))
			return nil
		}

		updated, err := h.reportService.AssignAdvisor(c.Context(), report, user, models.AdvisorGrant{
			AdvisorID:  advisorID,
			CanComment: input.CanComment,
		})
		h.HandleResponse(c, updated, err)
		return nil
	})
}
