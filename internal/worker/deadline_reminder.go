package worker

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	models "edu_accredit/internal/api/report/models"
	reportsvc "edu_accredit/internal/api/report/service"
	"edu_accredit/internal/logger"
)

// DeadlineReminderWorker nhắc deadline cho các yêu cầu viết báo cáo chưa hoàn thành.
// Mỗi chu kỳ quét các yêu cầu đang ở trạng thái pending/accepted/in_progress có
// deadline rơi vào cửa sổ nhắc và gửi thông báo cho người được giao.
// Gửi thông báo là best-effort; worker không bao giờ làm fail tiến trình chính.
type DeadlineReminderWorker struct {
	requestService      *reportsvc.ReportRequestService
	notificationService *reportsvc.NotificationService
	interval            time.Duration // Khoảng thời gian giữa các lần quét
	reminderWindow      time.Duration // Cửa sổ nhắc trước deadline
}

// NewDeadlineReminderWorker tạo mới DeadlineReminderWorker.
// Tham số:
//   - interval: Khoảng thời gian giữa các lần quét (mặc định: 1 giờ)
//   - reminderHours: Số giờ trước deadline bắt đầu nhắc (mặc định: 48)
func NewDeadlineReminderWorker(interval time.Duration, reminderHours int) (*DeadlineReminderWorker, error) {
	requestService, err := reportsvc.NewReportRequestService()
	if err != nil {
		return nil, err
	}
	notificationService, err := reportsvc.NewNotificationService()
	if err != nil {
		return nil, err
	}
	if interval < time.Minute {
		interval = time.Hour
	}
	if reminderHours <= 0 {
		reminderHours = 48
	}
	return &DeadlineReminderWorker{
		requestService:      requestService,
		notificationService: notificationService,
		interval:            interval,
		reminderWindow:      time.Duration(reminderHours) * time.Hour,
	}, nil
}

// Start chạy worker trong vòng lặp cho tới khi ctx bị hủy.
func (w *DeadlineReminderWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval":       w.interval.String(),
		"reminderWindow": w.reminderWindow.String(),
	}).Info("⏰ [DEADLINE] Starting Deadline Reminder Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("⏰ [DEADLINE] Deadline Reminder Worker stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("⏰ [DEADLINE] Panic khi quét deadline, sẽ tiếp tục ở lần chạy tiếp theo")
					}
				}()
				w.scanAndRemind(ctx)
			}()
		}
	}
}

// scanAndRemind quét các yêu cầu sắp tới hạn trong cửa sổ nhắc và gửi thông báo.
func (w *DeadlineReminderWorker) scanAndRemind(ctx context.Context) {
	log := logger.GetAppLogger()

	now := time.Now()
	windowEnd := now.Add(w.reminderWindow)

	filter := bson.M{
		"status": bson.M{"$in": []string{
			models.RequestStatusPending,
			models.RequestStatusAccepted,
			models.RequestStatusInProgress,
		}},
		"deadline": bson.M{
			"$gte": now.UnixMilli(),
			"$lte": windowEnd.UnixMilli(),
		},
	}

	requests, err := w.requestService.Find(ctx, filter, nil)
	if err != nil {
		log.WithError(err).Error("⏰ [DEADLINE] Lỗi quét các yêu cầu sắp tới hạn")
		return
	}
	if len(requests) == 0 {
		return
	}

	for _, request := range requests {
		hoursLeft := time.Until(time.UnixMilli(request.Deadline)).Hours()
		priority := models.PriorityHigh
		if request.Priority == models.PriorityUrgent {
			priority = models.PriorityUrgent
		}
		w.notificationService.Notify(ctx, models.Notification{
			RecipientID: request.AssignedTo,
			Type:        models.NotificationTypeDeadlineReminder,
			Title:       "Sắp tới hạn nộp báo cáo",
			Message:     fmt.Sprintf("Yêu cầu \"%s\" sẽ tới hạn sau khoảng %.0f giờ", request.Title, hoursLeft),
			Data: map[string]interface{}{
				"requestId": request.ID.Hex(),
				"deadline":  request.Deadline,
			},
			Priority: priority,
		})
	}

	log.WithFields(map[string]interface{}{
		"count": len(requests),
	}).Info("⏰ [DEADLINE] Đã gửi nhắc deadline")
}
