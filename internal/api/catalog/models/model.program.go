package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Program định nghĩa mô hình chương trình đánh giá (VD: AUN-QA, MOET).
type Program struct {
	_Relationships struct{}           `relationship:"collection:standards,field:programId,message:Không thể xóa chương trình vì có %d tiêu chuẩn trực thuộc.|collection:reports,field:programId,message:Không thể xóa chương trình vì có %d báo cáo đang tham chiếu tới."`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	AcademicYearID primitive.ObjectID `json:"academicYearId" bson:"academicYearId" index:"single:1"`
	Name           string             `json:"name" bson:"name" index:"text"`
	Code           string             `json:"code" bson:"code"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	Status         string             `json:"status" bson:"status" default:"active"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
