// Package models định nghĩa các model thuộc domain báo cáo:
// báo cáo phân tích minh chứng, yêu cầu viết báo cáo, nhật ký hoạt động và thông báo.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các loại báo cáo.
const (
	ReportTypeCriteriaAnalysis    = "criteria_analysis"    // Phiếu phân tích tiêu chí
	ReportTypeStandardAnalysis    = "standard_analysis"    // Phiếu phân tích tiêu chuẩn
	ReportTypeComprehensiveReport = "comprehensive_report" // Báo cáo tổng hợp
)

// Các trạng thái vòng đời của báo cáo.
const (
	ReportStatusDraft     = "draft"
	ReportStatusSubmitted = "submitted"
	ReportStatusPublished = "published"
	ReportStatusArchived  = "archived"
)

// Phương thức soạn nội dung báo cáo.
const (
	ContentMethodOnlineEditor = "online_editor"
	ContentMethodFileUpload   = "file_upload"
)

// Loại người đánh giá khi bình luận trên báo cáo.
const (
	ReviewerTypeManager   = "manager"
	ReviewerTypeEvaluator = "evaluator"
	ReviewerTypeAdmin     = "admin"
)

// SelfEvaluation là phần tự đánh giá của người viết báo cáo.
// Bắt buộc phải có trước khi nộp báo cáo; ghi đè toàn bộ mỗi lần cập nhật, không giữ lịch sử.
type SelfEvaluation struct {
	Content     string             `json:"content" bson:"content"`
	Score       int                `json:"score" bson:"score"` // Thang điểm 1-7
	EvaluatedBy primitive.ObjectID `json:"evaluatedBy,omitempty" bson:"evaluatedBy,omitempty"`
	EvaluatedAt int64              `json:"evaluatedAt,omitempty" bson:"evaluatedAt,omitempty"`
}

// ReportVersion là một bản ghi phiên bản nội dung, append-only.
// Mỗi lần nội dung thay đổi thành công, đúng một bản ghi được thêm vào cuối danh sách.
type ReportVersion struct {
	Content    string             `json:"content" bson:"content"` // Snapshot nội dung MỚI sau thay đổi
	RequestID  primitive.ObjectID `json:"requestId,omitempty" bson:"requestId,omitempty"`
	ChangeNote string             `json:"changeNote,omitempty" bson:"changeNote,omitempty"`
	ChangedBy  primitive.ObjectID `json:"changedBy" bson:"changedBy"`
	ChangedAt  int64              `json:"changedAt" bson:"changedAt"`
}

// ReviewerComment là bình luận của người đánh giá trên báo cáo.
type ReviewerComment struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	Comment      string             `json:"comment" bson:"comment"`
	Section      string             `json:"section,omitempty" bson:"section,omitempty"`
	ReviewerID   primitive.ObjectID `json:"reviewerId" bson:"reviewerId"`
	ReviewerType string             `json:"reviewerType" bson:"reviewerType"` // manager | evaluator | admin
	CommentedAt  int64              `json:"commentedAt" bson:"commentedAt"`
	IsResolved   bool               `json:"isResolved" bson:"isResolved"`
}

// LinkedEvidence là tham chiếu từ báo cáo tới minh chứng kèm file được chọn và đoạn ngữ cảnh.
type LinkedEvidence struct {
	EvidenceID    primitive.ObjectID `json:"evidenceId" bson:"evidenceId"`
	SelectedFiles []string           `json:"selectedFiles,omitempty" bson:"selectedFiles,omitempty"`
	ContextText   string             `json:"contextText,omitempty" bson:"contextText,omitempty"` // Tối đa 500 ký tự
	LinkedAt      int64              `json:"linkedAt" bson:"linkedAt"`
}

// ExpertGrant là quyền được cấp cho một chuyên gia trên một báo cáo cụ thể.
type ExpertGrant struct {
	ExpertID    primitive.ObjectID `json:"expertId" bson:"expertId"`
	AssignedBy  primitive.ObjectID `json:"assignedBy" bson:"assignedBy"`
	AssignedAt  int64              `json:"assignedAt" bson:"assignedAt"`
	CanComment  bool               `json:"canComment" bson:"canComment"`
	CanEvaluate bool               `json:"canEvaluate" bson:"canEvaluate"`
}

// AdvisorGrant là quyền được cấp cho một cố vấn trên một báo cáo cụ thể.
// Cố vấn chỉ có quyền bình luận, không có quyền chấm điểm.
type AdvisorGrant struct {
	AdvisorID  primitive.ObjectID `json:"advisorId" bson:"advisorId"`
	AssignedBy primitive.ObjectID `json:"assignedBy" bson:"assignedBy"`
	AssignedAt int64              `json:"assignedAt" bson:"assignedAt"`
	CanComment bool               `json:"canComment" bson:"canComment"`
}

// ReportAccessControl gom các danh sách cấp quyền nhúng trên báo cáo.
type ReportAccessControl struct {
	AssignedExperts []ExpertGrant  `json:"assignedExperts,omitempty" bson:"assignedExperts,omitempty"`
	Advisors        []AdvisorGrant `json:"advisors,omitempty" bson:"advisors,omitempty"`
}

// ReportMetadata là các bộ đếm thống kê, chỉ tăng không giảm trong vận hành bình thường.
type ReportMetadata struct {
	ViewCount       int64   `json:"viewCount" bson:"viewCount"`
	DownloadCount   int64   `json:"downloadCount" bson:"downloadCount"`
	EvaluationCount int64   `json:"evaluationCount" bson:"evaluationCount"`
	AverageScore    float64 `json:"averageScore" bson:"averageScore"`
}

// Report định nghĩa mô hình báo cáo phân tích minh chứng.
//
// Mã báo cáo (code) là duy nhất toàn cục, sinh từ loại báo cáo + mã năm học
// + mã tiêu chuẩn/tiêu chí (nếu có) với hậu tố số tăng dần.
// Trạng thái chỉ chuyển theo bảng chuyển trạng thái cố định:
// draft → submitted (nộp), bất kỳ → published (xuất bản), published → draft (gỡ xuất bản).
type Report struct {
	ID   primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Code string             `json:"code" bson:"code" index:"unique"`
	Type string             `json:"type" bson:"type" index:"single:1"`

	// Phân loại theo cây đánh giá; standardId/criteriaId bắt buộc hay không tuỳ theo type.
	AcademicYearID primitive.ObjectID `json:"academicYearId" bson:"academicYearId" index:"single:1"`
	ProgramID      primitive.ObjectID `json:"programId" bson:"programId"`
	OrganizationID primitive.ObjectID `json:"organizationId" bson:"organizationId"`
	StandardID     primitive.ObjectID `json:"standardId,omitempty" bson:"standardId,omitempty" index:"single:1"`
	CriteriaID     primitive.ObjectID `json:"criteriaId,omitempty" bson:"criteriaId,omitempty" index:"single:1"`

	// RequestID trỏ tới yêu cầu viết báo cáo gốc (nếu báo cáo được tạo từ một yêu cầu).
	// Khi nộp báo cáo, yêu cầu gốc sẽ được chuyển sang completed.
	RequestID primitive.ObjectID `json:"requestId,omitempty" bson:"requestId,omitempty" index:"single:1"`

	Title         string `json:"title" bson:"title" index:"text"`
	Content       string `json:"content,omitempty" bson:"content,omitempty"`
	ContentMethod string `json:"contentMethod" bson:"contentMethod" default:"online_editor"`
	AttachedFile  string `json:"attachedFile,omitempty" bson:"attachedFile,omitempty"`
	WordCount     int    `json:"wordCount" bson:"wordCount"` // Luôn tính lại từ content khi nội dung thay đổi
	Summary       string `json:"summary,omitempty" bson:"summary,omitempty"`

	Status      string `json:"status" bson:"status" default:"draft" index:"single:1"`
	SubmittedAt int64  `json:"submittedAt,omitempty" bson:"submittedAt,omitempty"`
	PublishedAt int64  `json:"publishedAt,omitempty" bson:"publishedAt,omitempty"`

	SelfEvaluation *SelfEvaluation `json:"selfEvaluation,omitempty" bson:"selfEvaluation,omitempty"`

	Versions         []ReportVersion     `json:"versions,omitempty" bson:"versions,omitempty"`
	ReviewerComments []ReviewerComment   `json:"reviewerComments,omitempty" bson:"reviewerComments,omitempty"`
	LinkedEvidences  []LinkedEvidence    `json:"linkedEvidences,omitempty" bson:"linkedEvidences,omitempty"`
	AccessControl    ReportAccessControl `json:"accessControl,omitempty" bson:"accessControl,omitempty"`
	Metadata         ReportMetadata      `json:"metadata" bson:"metadata"`

	CreatedBy primitive.ObjectID `json:"createdBy" bson:"createdBy" index:"single:1"` // Bất biến sau khi tạo
	UpdatedBy primitive.ObjectID `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// IsValidReportType kiểm tra type có thuộc tập loại báo cáo hợp lệ không.
func IsValidReportType(t string) bool {
	switch t {
	case ReportTypeCriteriaAnalysis, ReportTypeStandardAnalysis, ReportTypeComprehensiveReport:
		return true
	}
	return false
}
