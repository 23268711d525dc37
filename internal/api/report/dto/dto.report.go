// Package reportdto - DTO cho domain báo cáo.
package reportdto

// ReportCreateInput đầu vào tạo báo cáo mới.
// Mã báo cáo không nhận từ client mà do hệ thống sinh ra.
type ReportCreateInput struct {
	Type           string `json:"type" validate:"required,oneof=criteria_analysis standard_analysis comprehensive_report"`
	AcademicYearID string `json:"academicYearId" validate:"required" transform:"str_objectid"`
	ProgramID      string `json:"programId" validate:"required" transform:"str_objectid"`
	OrganizationID string `json:"organizationId" validate:"required" transform:"str_objectid"`
	StandardID     string `json:"standardId" validate:"omitempty" transform:"str_objectid,optional"`
	CriteriaID     string `json:"criteriaId" validate:"omitempty" transform:"str_objectid,optional"`
	RequestID      string `json:"requestId" validate:"omitempty" transform:"str_objectid,optional"`
	Title          string `json:"title" validate:"required,no_xss,max=500"`
	Content        string `json:"content" validate:"omitempty"`
	ContentMethod  string `json:"contentMethod" validate:"omitempty,oneof=online_editor file_upload"`
	AttachedFile   string `json:"attachedFile" validate:"omitempty"`
	Summary        string `json:"summary" validate:"omitempty,no_xss,max=2000"`
}

// ReportUpdateInput đầu vào cập nhật thông tin chung của báo cáo.
// Nội dung không sửa qua đây; dùng endpoint cập nhật nội dung để phiên bản được ghi lại.
type ReportUpdateInput struct {
	Title        string `json:"title" validate:"omitempty,no_xss,max=500"`
	Summary      string `json:"summary" validate:"omitempty,no_xss,max=2000"`
	AttachedFile string `json:"attachedFile" validate:"omitempty"`
}

// ReportContentInput đầu vào cập nhật nội dung báo cáo.
// Mỗi lần cập nhật thành công sẽ append một bản ghi phiên bản mới.
type ReportContentInput struct {
	Content    string `json:"content" validate:"required"`
	ChangeNote string `json:"changeNote" validate:"omitempty,max=500"`
}

// SelfEvaluationInput đầu vào tự đánh giá của người viết. Ghi đè toàn bộ phần tự đánh giá cũ.
type SelfEvaluationInput struct {
	Content string `json:"content" validate:"required"`
	Score   int    `json:"score" validate:"required,min=1,max=7"`
}

// ReportCommentInput đầu vào thêm bình luận đánh giá.
type ReportCommentInput struct {
	Comment      string `json:"comment" validate:"required,no_xss"`
	Section      string `json:"section" validate:"omitempty,max=200"`
	ReviewerType string `json:"reviewerType" validate:"omitempty,oneof=manager evaluator admin"`
}

// ResolveCommentInput đầu vào đánh dấu đã xử lý một bình luận.
type ResolveCommentInput struct {
	CommentID string `json:"commentId" validate:"required"`
}

// LinkEvidenceInput đầu vào liên kết minh chứng vào báo cáo.
type LinkEvidenceInput struct {
	EvidenceID    string   `json:"evidenceId" validate:"required"`
	SelectedFiles []string `json:"selectedFiles" validate:"omitempty"`
	ContextText   string   `json:"contextText" validate:"omitempty,max=500"`
}

// ReportEvaluationInput đầu vào chấm điểm báo cáo của chuyên gia.
type ReportEvaluationInput struct {
	Score   float64 `json:"score" validate:"required,min=1,max=7"`
	Comment string  `json:"comment" validate:"omitempty,no_xss"`
}

// AssignExpertInput đầu vào gán chuyên gia vào báo cáo.
type AssignExpertInput struct {
	ExpertID    string `json:"expertId" validate:"required"`
	CanComment  bool   `json:"canComment"`
	CanEvaluate bool   `json:"canEvaluate"`
}

// AssignAdvisorInput đầu vào gán cố vấn vào báo cáo.
type AssignAdvisorInput struct {
	AdvisorID  string `json:"advisorId" validate:"required"`
	CanComment bool   `json:"canComment"`
}
