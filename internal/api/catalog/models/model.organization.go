package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Organization định nghĩa mô hình tổ chức - cấp đánh giá (VD: cấp trường, cấp chương trình).
type Organization struct {
	_Relationships struct{}           `relationship:"collection:standards,field:organizationId,message:Không thể xóa tổ chức vì có %d tiêu chuẩn trực thuộc.|collection:reports,field:organizationId,message:Không thể xóa tổ chức vì có %d báo cáo đang tham chiếu tới."`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	AcademicYearID primitive.ObjectID `json:"academicYearId" bson:"academicYearId" index:"single:1"`
	Name           string             `json:"name" bson:"name" index:"text"`
	Code           string             `json:"code" bson:"code"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	Status         string             `json:"status" bson:"status" default:"active"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
