package reporthdl

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"edu_accredit/internal/api/middleware"
	reportsvc "edu_accredit/internal/api/report/service"
	"edu_accredit/internal/common"
	"edu_accredit/internal/utility"
)

// HandleAssessmentList trả về danh sách báo cáo đã xuất bản cho trang đánh giá,
// có phân trang, tìm kiếm theo tiêu đề/mã và lọc theo loại, tiêu chuẩn, tiêu chí.
func (h *ReportHandler) HandleAssessmentList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := h.ParsePagination(c)

		filter := reportsvc.AssessmentFilter{
			Search: c.Query("search"),
			Type:   c.Query("type"),
			SortBy: c.Query("sortBy"),
		}
		if standardParam := c.Query("standardId"); standardParam != "" {
			if standardID, err := primitive.ObjectIDFromHex(standardParam); err == nil {
				filter.StandardID = standardID
			}
		}
		if criteriaParam := c.Query("criteriaId"); criteriaParam != "" {
			if criteriaID, err := primitive.ObjectIDFromHex(criteriaParam); err == nil {
				filter.CriteriaID = criteriaID
			}
		}
		if c.Query("sortOrder") == "asc" {
			filter.SortOrder = 1
		} else {
			filter.SortOrder = -1
		}

		result, err := h.reportService.ListPublished(c.Context(), filter, page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleAssessmentDetail trả về chi tiết một báo cáo đã xuất bản.
func (h *ReportHandler) HandleAssessmentDetail(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		user := middleware.GetUserFromContext(c)
		if user == nil {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		idParam := h.GetIDFromContext(c)
		if !utility.IsValidObjectID(idParam) {
			h.HandleResponse(c, nil, common.NewValidationError("ID báo cáo không hợp lệ"))
			return nil
		}
		id, _ := primitive.ObjectIDFromHex(idParam)

		report, err := h.reportService.FindPublishedDetail(c.Context(), id, user)
		h.HandleResponse(c, report, err)
		return nil
	})
}

// HandleListMine trả về danh sách báo cáo do người dùng đang đăng nhập tạo,
// mọi trạng thái, mới cập nhật trước.
func (h *ReportHandler) HandleListMine(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		user := middleware.GetUserFromContext(c)
		if user == nil {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		page, limit := h.ParsePagination(c)
		filter := bson.M{"createdBy": user.ID}
		if status := c.Query("status"); status != "" {
			filter["status"] = status
		}

		opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
		result, err := h.reportService.FindWithPagination(c.Context(), filter, page, limit, opts)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleAssessmentStatistics trả về thống kê số báo cáo xuất bản theo loại.
func (h *ReportHandler) HandleAssessmentStatistics(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		stats, err := h.reportService.Statistics(c.Context())
		h.HandleResponse(c, stats, err)
		return nil
	})
}
