package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các loại thông báo trong hệ thống.
const (
	NotificationTypeReportRequest    = "report_request"
	NotificationTypeRequestAccepted  = "request_accepted"
	NotificationTypeRequestRejected  = "request_rejected"
	NotificationTypeRequestCompleted = "request_completed"
	NotificationTypeReportPublished  = "report_published"
	NotificationTypeDeadlineReminder = "deadline_reminder"
)

// Notification là thông báo gửi tới người dùng.
// Gửi thông báo là side effect best-effort, không bao giờ làm fail thao tác chính.
type Notification struct {
	ID          primitive.ObjectID     `json:"id,omitempty" bson:"_id,omitempty"`
	RecipientID primitive.ObjectID     `json:"recipientId" bson:"recipientId" index:"single:1"`
	SenderID    primitive.ObjectID     `json:"senderId,omitempty" bson:"senderId,omitempty"`
	Type        string                 `json:"type" bson:"type" index:"single:1"`
	Title       string                 `json:"title" bson:"title"`
	Message     string                 `json:"message" bson:"message"`
	Data        map[string]interface{} `json:"data,omitempty" bson:"data,omitempty"`
	Priority    string                 `json:"priority" bson:"priority" default:"normal"`
	IsRead      bool                   `json:"isRead" bson:"isRead" index:"single:1"`
	CreatedAt   int64                  `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64                  `json:"updatedAt" bson:"updatedAt"`
}
