package reportsvc

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"

	authsvc "edu_accredit/internal/api/auth/service"
	basesvc "edu_accredit/internal/api/base/service"
	models "edu_accredit/internal/api/report/models"
	"edu_accredit/internal/common"
	"edu_accredit/internal/global"
)

// NotificationService tạo thông báo trong hệ thống và gửi email cho thông báo khẩn cấp.
// Mọi thao tác đều best-effort: thất bại chỉ được log lại, không làm fail thao tác chính.
type NotificationService struct {
	*basesvc.BaseServiceMongoImpl[models.Notification]
	userService *authsvc.UserService
}

// NewNotificationService tạo mới NotificationService
func NewNotificationService() (*NotificationService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Notifications)
	if !exist {
		return nil, fmt.Errorf("failed to get notifications collection: %v", common.ErrNotFound)
	}
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, err
	}
	return &NotificationService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Notification](collection),
		userService:          userService,
	}, nil
}

// Notify tạo một thông báo cho người nhận. Thông báo khẩn cấp (priority urgent)
// được gửi thêm qua email nếu SMTP đã cấu hình.
func (s *NotificationService) Notify(ctx context.Context, notification models.Notification) {
	if notification.Priority == "" {
		notification.Priority = models.PriorityNormal
	}
	now := time.Now().UnixMilli()
	notification.CreatedAt = now
	notification.UpdatedAt = now

	if _, err := s.InsertOne(ctx, notification); err != nil {
		logrus.WithFields(logrus.Fields{
			"recipientId": notification.RecipientID.Hex(),
			"type":        notification.Type,
			"error":       err.Error(),
		}).Warn("Tạo thông báo thất bại")
		return
	}

	if notification.Priority == models.PriorityUrgent {
		go s.sendEmail(notification)
	}
}

// sendEmail gửi email cho thông báo khẩn cấp. Chạy trong goroutine riêng,
// tự bảo vệ bằng recover để không làm sập tiến trình.
func (s *NotificationService) sendEmail(notification models.Notification) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("recovered", r).Error("Panic khi gửi email thông báo")
		}
	}()

	cfg := global.ServerConfig
	if cfg == nil || cfg.SMTPHost == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	recipient, err := s.userService.FindOneById(ctx, notification.RecipientID)
	if err != nil || recipient.Email == "" {
		return
	}

	message := gomail.NewMessage()
	message.SetHeader("From", cfg.SMTPFrom)
	message.SetHeader("To", recipient.Email)
	message.SetHeader("Subject", "[Khẩn] "+notification.Title)
	message.SetBody("text/plain", notification.Message)

	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	if err := dialer.DialAndSend(message); err != nil {
		logrus.WithFields(logrus.Fields{
			"recipient": recipient.Email,
			"error":     err.Error(),
		}).Warn("Gửi email thông báo khẩn cấp thất bại")
	}
}

// MarkRead đánh dấu một thông báo là đã đọc.
func (s *NotificationService) MarkRead(ctx context.Context, notification models.Notification) (models.Notification, error) {
	return s.UpdateById(ctx, notification.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"isRead":    true,
			"updatedAt": time.Now().UnixMilli(),
		},
	})
}
