package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Criteria định nghĩa mô hình tiêu chí đánh giá, trực thuộc một tiêu chuẩn.
// Code là 1-2 chữ số, được zero-pad thành 2 chữ số khi sinh mã báo cáo.
type Criteria struct {
	_Relationships struct{}           `relationship:"collection:reports,field:criteriaId,message:Không thể xóa tiêu chí vì có %d báo cáo đang tham chiếu tới."`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	AcademicYearID primitive.ObjectID `json:"academicYearId" bson:"academicYearId" index:"single:1"`
	Name           string             `json:"name" bson:"name" index:"text"`
	Code           string             `json:"code" bson:"code"`
	StandardID     primitive.ObjectID `json:"standardId" bson:"standardId" index:"single:1"`
	ProgramID      primitive.ObjectID `json:"programId" bson:"programId"`
	OrganizationID primitive.ObjectID `json:"organizationId" bson:"organizationId"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	Status         string             `json:"status" bson:"status" default:"active"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
