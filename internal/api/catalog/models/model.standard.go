package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Standard định nghĩa mô hình tiêu chuẩn đánh giá.
// Code là 1-2 chữ số (VD: 1, 01, 12), được zero-pad thành 2 chữ số khi sinh mã báo cáo.
type Standard struct {
	_Relationships struct{}           `relationship:"collection:criterias,field:standardId,message:Không thể xóa tiêu chuẩn vì có %d tiêu chí trực thuộc. Vui lòng xóa các tiêu chí trước.|collection:reports,field:standardId,message:Không thể xóa tiêu chuẩn vì có %d báo cáo đang tham chiếu tới."`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	AcademicYearID primitive.ObjectID `json:"academicYearId" bson:"academicYearId" index:"compound:year_code"`
	Name           string             `json:"name" bson:"name" index:"text"`
	Code           string             `json:"code" bson:"code" index:"compound:year_code"`
	ProgramID      primitive.ObjectID `json:"programId" bson:"programId" index:"single:1"`
	OrganizationID primitive.ObjectID `json:"organizationId" bson:"organizationId" index:"single:1"`
	Objectives     string             `json:"objectives,omitempty" bson:"objectives,omitempty"`
	Status         string             `json:"status" bson:"status" default:"active"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
