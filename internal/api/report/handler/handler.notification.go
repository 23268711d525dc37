package reporthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basehdl "edu_accredit/internal/api/base/handler"
	"edu_accredit/internal/api/middleware"
	models "edu_accredit/internal/api/report/models"
	reportsvc "edu_accredit/internal/api/report/service"
	"edu_accredit/internal/common"
	"edu_accredit/internal/utility"
)

// NotificationHandler xử lý các request thông báo của người dùng đang đăng nhập.
type NotificationHandler struct {
	*basehdl.BaseHandler[models.Notification, interface{}, interface{}]
	notificationService *reportsvc.NotificationService
}

// NewNotificationHandler tạo instance mới của NotificationHandler
func NewNotificationHandler() (*NotificationHandler, error) {
	service, err := reportsvc.NewNotificationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create notification service: %v", err)
	}
	return &NotificationHandler{
		BaseHandler:         basehdl.NewBaseHandler[models.Notification, interface{}, interface{}](service),
		notificationService: service,
	}, nil
}

// HandleListMine trả về thông báo của người dùng đang đăng nhập, mới nhất trước.
func (h *NotificationHandler) HandleListMine(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		user := middleware.GetUserFromContext(c)
		if user == nil {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		page, limit := h.ParsePagination(c)
		filter := bson.M{"recipientId": user.ID}
		if c.Query("unread") == "true" {
			filter["isRead"] = false
		}

		opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
		result, err := h.notificationService.FindWithPagination(c.Context(), filter, page, limit, opts)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleMarkRead đánh dấu một thông báo của người dùng là đã đọc.
// Thông báo của người khác không đánh dấu được, trả về 404.
func (h *NotificationHandler) HandleMarkRead(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		user := middleware.GetUserFromContext(c)
		if user == nil {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		idParam := h.GetIDFromContext(c)
		if !utility.IsValidObjectID(idParam) {
			h.HandleResponse(c, nil, common.NewValidationError("ID thông báo không hợp lệ"))
			return nil
		}
		id, _ := primitive.ObjectIDFromHex(idParam)

		notification, err := h.notificationService.FindOne(c.Context(),
			bson.M{"_id": id, "recipientId": user.ID}, nil)
		if err != nil {
			h.HandleResponse(c, nil, common.ErrNotFound)
			return nil
		}

		updated, err := h.notificationService.MarkRead(c.Context(), notification)
		h.HandleResponse(c, updated, err)
		return nil
	})
}
