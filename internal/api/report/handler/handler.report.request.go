package reporthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basehdl "edu_accredit/internal/api/base/handler"
	"edu_accredit/internal/api/middleware"
	reportdto "edu_accredit/internal/api/report/dto"
	models "edu_accredit/internal/api/report/models"
	reportsvc "edu_accredit/internal/api/report/service"
	"edu_accredit/internal/common"
	"edu_accredit/internal/logger"
	"edu_accredit/internal/utility"
)

// ReportRequestHandler xử lý các request cho yêu cầu viết báo cáo.
type ReportRequestHandler struct {
	*basehdl.BaseHandler[models.ReportRequest, reportdto.ReportRequestCreateInput, reportdto.ReportRequestUpdateInput]
	requestService *reportsvc.ReportRequestService
}

// NewReportRequestHandler tạo instance mới của ReportRequestHandler
func NewReportRequestHandler() (*ReportRequestHandler, error) {
	service, err := reportsvc.NewReportRequestService()
	if err != nil {
		return nil, fmt.Errorf("failed to create report request service: %v", err)
	}
	return &ReportRequestHandler{
		BaseHandler:    basehdl.NewBaseHandler[models.ReportRequest, reportdto.ReportRequestCreateInput, reportdto.ReportRequestUpdateInput](service),
		requestService: service,
	}, nil
}

// resolveRequest tìm yêu cầu theo id trên URL.
func (h *ReportRequestHandler) resolveRequest(c fiber.Ctx) (*models.ReportRequest, error) {
	idParam := h.GetIDFromContext(c)
	if !utility.IsValidObjectID(idParam) {
		return nil, common.NewValidationError("ID yêu cầu không hợp lệ")
	}
	id, _ := primitive.ObjectIDFromHex(idParam)

	request, err := h.requestService.FindOneById(c.Context(), id)
	if err != nil {
		return nil, common.ErrNotFound
	}
	return &request, nil
}

// InsertOne tạo yêu cầu viết báo cáo mới. Ghi đè handler CRUD mặc định để
// kiểm tra vai trò người tạo, ràng buộc theo loại và gửi thông báo cho người được giao.
func (h *ReportRequestHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		user := middleware.GetUserFromContext(c)
		if user == nil {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		input := new(reportdto.ReportRequestCreateInput)
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

		created, err := h.requestService.Create(c.Context(), user, *model)
		if err == nil {
			logger.LogLifecycle("report_request_create", "report_request", created.ID.Hex(), c, map[string]interface{}{
				"assignedTo": created.AssignedTo.Hex(),
				"priority":   created.Priority,
			})
		}
		h.HandleResponse(c, created, err)
		return nil
	})
}

// UpdateById chỉnh sửa một yêu cầu viết báo cáo. Ghi đè handler CRUD mặc định
// để chặn chỉnh sửa yêu cầu đã rời trạng thái chờ: completed và rejected là bất biến.
func (h *ReportRequestHandler) UpdateById(c fiber.Ctx) error {
	request, err := h.resolveRequest(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := reportsvc.EnsureRequestEditable(request); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	return h.BaseHandler.UpdateById(c)
}

// HandleListMine trả về danh sách yêu cầu trong phạm vi của người dùng:
// admin thấy tất cả, manager thấy yêu cầu mình tạo hoặc được giao,
// các vai trò còn lại chỉ thấy yêu cầu được giao cho mình. Mới cập nhật trước.
func (h *ReportRequestHandler) HandleListMine(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		user := middleware.GetUserFromContext(c)
		if user == nil {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		page, limit := h.ParsePagination(c)
		filter := reportsvc.RequestScopeFilter(user)
		if status := c.Query("status"); status != "" {
			filter["status"] = status
		}

		opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
		result, err := h.requestService.FindWithPagination(c.Context(), filter, page, limit, opts)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleDetail trả về chi tiết một yêu cầu. Người ngoài cuộc (không phải admin,
// người tạo hay người được giao) nhận lỗi quyền.
func (h *ReportRequestHandler) HandleDetail(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		user := middleware.GetUserFromContext(c)
		if user == nil {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		request, err := h.resolveRequest(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if !reportsvc.CanViewRequest(user, request) {
			h.HandleResponse(c, nil, common.NewPermissionError("Bạn không có quyền xem yêu cầu này"))
			return nil
		}

		h.HandleResponse(c, request, nil)
		return nil
	})
}

// HandleAccept nhận một yêu cầu viết báo cáo: pending → accepted.
func (h *ReportRequestHandler) HandleAccept(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		user := middleware.GetUserFromContext(c)
		if user == nil {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		request, err := h.resolveRequest(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updated, err := h.requestService.Accept(c.Context(), request, user)
		if err == nil {
			logger.LogLifecycle("report_request_accept", "report_request", request.ID.Hex(), c, nil)
		}
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleReject từ chối một yêu cầu viết báo cáo kèm lý do.
func (h *ReportRequestHandler) HandleReject(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		user := middleware.GetUserFromContext(c)
		if user == nil {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		request, err := h.resolveRequest(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(reportdto.RejectRequestInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updated, err := h.requestService.Reject(c.Context(), request, user, input.ResponseNote)
		if err == nil {
			logger.LogLifecycle("report_request_reject", "report_request", request.ID.Hex(), c, nil)
		}
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleMarkInProgress đánh dấu yêu cầu đã nhận sang đang thực hiện.
func (h *ReportRequestHandler) HandleMarkInProgress(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		request, err := h.resolveRequest(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updated, err := h.requestService.MarkInProgress(c.Context(), request)
		h.HandleResponse(c, updated, err)
		return nil
	})
}
