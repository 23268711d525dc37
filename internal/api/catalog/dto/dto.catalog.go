// Package catalogdto - DTO cho các model danh mục.
package catalogdto

// AcademicYearCreateInput đầu vào tạo năm học.
type AcademicYearCreateInput struct {
	Name      string `json:"name" validate:"required,no_xss"`
	Code      string `json:"code" validate:"required"`
	StartYear int    `json:"startYear" validate:"required,min=2020,max=2050"`
	EndYear   int    `json:"endYear" validate:"required,min=2021,max=2051"`
	Status    string `json:"status" validate:"omitempty,oneof=draft active completed archived"`
	IsCurrent bool   `json:"isCurrent"`
}

// AcademicYearUpdateInput đầu vào cập nhật năm học.
type AcademicYearUpdateInput struct {
	Name      string `json:"name" validate:"omitempty,no_xss"`
	Status    string `json:"status" validate:"omitempty,oneof=draft active completed archived"`
	IsCurrent bool   `json:"isCurrent"`
}

// ProgramCreateInput đầu vào tạo chương trình đánh giá.
type ProgramCreateInput struct {
	AcademicYearID string `json:"academicYearId" validate:"required" transform:"str_objectid"`
	Name           string `json:"name" validate:"required,no_xss"`
	Code           string `json:"code" validate:"required"`
	Description    string `json:"description" validate:"omitempty,no_xss"`
}

// ProgramUpdateInput đầu vào cập nhật chương trình đánh giá.
type ProgramUpdateInput struct {
	Name        string `json:"name" validate:"omitempty,no_xss"`
	Description string `json:"description" validate:"omitempty,no_xss"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// OrganizationCreateInput đầu vào tạo tổ chức - cấp đánh giá.
type OrganizationCreateInput struct {
	AcademicYearID string `json:"academicYearId" validate:"required" transform:"str_objectid"`
	Name           string `json:"name" validate:"required,no_xss"`
	Code           string `json:"code" validate:"required"`
	Description    string `json:"description" validate:"omitempty,no_xss"`
}

// OrganizationUpdateInput đầu vào cập nhật tổ chức.
type OrganizationUpdateInput struct {
	Name        string `json:"name" validate:"omitempty,no_xss"`
	Description string `json:"description" validate:"omitempty,no_xss"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// StandardCreateInput đầu vào tạo tiêu chuẩn.
type StandardCreateInput struct {
	AcademicYearID string `json:"academicYearId" validate:"required" transform:"str_objectid"`
	Name           string `json:"name" validate:"required,no_xss"`
	Code           string `json:"code" validate:"required,max=2"`
	ProgramID      string `json:"programId" validate:"required" transform:"str_objectid"`
	OrganizationID string `json:"organizationId" validate:"required" transform:"str_objectid"`
	Objectives     string `json:"objectives" validate:"omitempty,no_xss,max=2000"`
}

// StandardUpdateInput đầu vào cập nhật tiêu chuẩn.
type StandardUpdateInput struct {
	Name       string `json:"name" validate:"omitempty,no_xss"`
	Objectives string `json:"objectives" validate:"omitempty,no_xss,max=2000"`
	Status     string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// CriteriaCreateInput đầu vào tạo tiêu chí.
type CriteriaCreateInput struct {
	AcademicYearID string `json:"academicYearId" validate:"required" transform:"str_objectid"`
	Name           string `json:"name" validate:"required,no_xss"`
	Code           string `json:"code" validate:"required,max=2"`
	StandardID     string `json:"standardId" validate:"required" transform:"str_objectid"`
	ProgramID      string `json:"programId" validate:"required" transform:"str_objectid"`
	OrganizationID string `json:"organizationId" validate:"required" transform:"str_objectid"`
	Description    string `json:"description" validate:"omitempty,no_xss"`
}

// CriteriaUpdateInput đầu vào cập nhật tiêu chí.
type CriteriaUpdateInput struct {
	Name        string `json:"name" validate:"omitempty,no_xss"`
	Description string `json:"description" validate:"omitempty,no_xss"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive"`
}
