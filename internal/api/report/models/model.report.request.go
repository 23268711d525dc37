package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái vòng đời của yêu cầu viết báo cáo.
const (
	RequestStatusPending    = "pending"
	RequestStatusAccepted   = "accepted"
	RequestStatusInProgress = "in_progress"
	RequestStatusCompleted  = "completed"
	RequestStatusRejected   = "rejected"
)

// Các mức độ ưu tiên của yêu cầu.
const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// ReportRequest định nghĩa mô hình yêu cầu viết báo cáo, giao từ manager cho người viết.
//
// Chỉ assignedTo được accept/reject yêu cầu. Accept chỉ hợp lệ từ pending;
// reject hợp lệ từ pending hoặc accepted. Việc hoàn thành (completed) chỉ do
// engine vòng đời báo cáo thực hiện khi báo cáo liên kết được nộp, không bao giờ
// do người dùng gọi trực tiếp. Sau khi completed hoặc rejected, yêu cầu bất biến.
type ReportRequest struct {
	ID    primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title string             `json:"title" bson:"title" index:"text"`
	// Mô tả chi tiết yêu cầu, tối đa 2000 ký tự.
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Type        string `json:"type" bson:"type" index:"single:1"`

	AcademicYearID primitive.ObjectID `json:"academicYearId" bson:"academicYearId" index:"single:1"`
	ProgramID      primitive.ObjectID `json:"programId" bson:"programId"`
	OrganizationID primitive.ObjectID `json:"organizationId" bson:"organizationId"`
	StandardID     primitive.ObjectID `json:"standardId,omitempty" bson:"standardId,omitempty"`
	CriteriaID     primitive.ObjectID `json:"criteriaId,omitempty" bson:"criteriaId,omitempty"`

	Deadline int64  `json:"deadline" bson:"deadline" index:"single:1"`
	Priority string `json:"priority" bson:"priority" default:"normal"`

	AssignedTo primitive.ObjectID `json:"assignedTo" bson:"assignedTo" index:"single:1"`
	Status     string             `json:"status" bson:"status" default:"pending" index:"single:1"`

	// ResponseNote chỉ được ghi khi từ chối, tối đa 500 ký tự.
	ResponseNote string `json:"responseNote,omitempty" bson:"responseNote,omitempty"`
	// ReportID chỉ được gán khi hoàn thành, trỏ tới báo cáo được nộp.
	ReportID primitive.ObjectID `json:"reportId,omitempty" bson:"reportId,omitempty"`

	AcceptedAt  int64 `json:"acceptedAt,omitempty" bson:"acceptedAt,omitempty"`
	RejectedAt  int64 `json:"rejectedAt,omitempty" bson:"rejectedAt,omitempty"`
	CompletedAt int64 `json:"completedAt,omitempty" bson:"completedAt,omitempty"`

	CreatedBy primitive.ObjectID `json:"createdBy" bson:"createdBy"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
