package reportdto

// ReportRequestCreateInput đầu vào tạo yêu cầu viết báo cáo.
// Quy tắc ràng buộc theo type (criteria_analysis cần criteriaId, standard_analysis
// cần standardId, tiêu chí không được thiếu tiêu chuẩn) được kiểm tra ở service.
type ReportRequestCreateInput struct {
	Title          string `json:"title" validate:"required,no_xss,max=500"`
	Description    string `json:"description" validate:"omitempty,no_xss,max=2000"`
	Type           string `json:"type" validate:"required,oneof=criteria_analysis standard_analysis comprehensive_report"`
	AcademicYearID string `json:"academicYearId" validate:"required" transform:"str_objectid"`
	ProgramID      string `json:"programId" validate:"required" transform:"str_objectid"`
	OrganizationID string `json:"organizationId" validate:"required" transform:"str_objectid"`
	StandardID     string `json:"standardId" validate:"omitempty" transform:"str_objectid,optional"`
	CriteriaID     string `json:"criteriaId" validate:"omitempty" transform:"str_objectid,optional"`
	Deadline       int64  `json:"deadline" validate:"required"`
	Priority       string `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
	AssignedTo     string `json:"assignedTo" validate:"required" transform:"str_objectid"`
}

// ReportRequestUpdateInput đầu vào cập nhật yêu cầu (chỉ khi còn pending).
type ReportRequestUpdateInput struct {
	Title       string `json:"title" validate:"omitempty,no_xss,max=500"`
	Description string `json:"description" validate:"omitempty,no_xss,max=2000"`
	Deadline    int64  `json:"deadline" validate:"omitempty"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
}

// RejectRequestInput đầu vào từ chối yêu cầu viết báo cáo.
type RejectRequestInput struct {
	ResponseNote string `json:"responseNote" validate:"required,no_xss,max=500"`
}
