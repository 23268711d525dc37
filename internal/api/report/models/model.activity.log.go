package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mức độ nghiêm trọng của bản ghi nhật ký hoạt động.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// ActivityLog là bản ghi nhật ký hoạt động, append-only.
// Ghi nhật ký là side effect best-effort: thất bại khi ghi không bao giờ
// làm fail thao tác chính.
type ActivityLog struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID          primitive.ObjectID `json:"userId" bson:"userId" index:"single:1"`
	AcademicYearID  primitive.ObjectID `json:"academicYearId,omitempty" bson:"academicYearId,omitempty" index:"single:1"`
	Action          string             `json:"action" bson:"action" index:"single:1"`
	Description     string             `json:"description,omitempty" bson:"description,omitempty"`
	TargetType      string             `json:"targetType,omitempty" bson:"targetType,omitempty"`
	TargetID        primitive.ObjectID `json:"targetId,omitempty" bson:"targetId,omitempty" index:"single:1"`
	TargetName      string             `json:"targetName,omitempty" bson:"targetName,omitempty"`
	Severity        string             `json:"severity" bson:"severity" default:"low"`
	OldData         interface{}        `json:"oldData,omitempty" bson:"oldData,omitempty"`
	NewData         interface{}        `json:"newData,omitempty" bson:"newData,omitempty"`
	IsAuditRequired bool               `json:"isAuditRequired" bson:"isAuditRequired"`
	CreatedAt       int64              `json:"createdAt" bson:"createdAt"`
}
