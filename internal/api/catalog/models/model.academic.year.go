// Package models - các model danh mục phục vụ kiểm định: năm học, chương trình, tổ chức, tiêu chuẩn, tiêu chí.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AcademicYear định nghĩa mô hình năm học.
// Code có định dạng YYYY-YYYY (VD: 2024-2025), dùng làm thành phần năm trong mã báo cáo.
type AcademicYear struct {
	_Relationships struct{}           `relationship:"collection:reports,field:academicYearId,message:Không thể xóa năm học vì có %d báo cáo trực thuộc. Vui lòng xóa các báo cáo trước.|collection:report_requests,field:academicYearId,message:Không thể xóa năm học vì có %d yêu cầu viết báo cáo trực thuộc. Vui lòng xóa các yêu cầu trước."`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name" index:"text"`
	Code           string             `json:"code" bson:"code" index:"unique"`
	StartYear      int                `json:"startYear" bson:"startYear"`
	EndYear        int                `json:"endYear" bson:"endYear"`
	Status         string             `json:"status" bson:"status" default:"draft"`
	IsCurrent      bool               `json:"isCurrent" bson:"isCurrent"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
