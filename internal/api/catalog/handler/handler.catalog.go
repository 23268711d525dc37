// Package cataloghdl - handler CRUD cho các model danh mục.
package cataloghdl

import (
	"fmt"

	catalogdto "edu_accredit/internal/api/catalog/dto"
	models "edu_accredit/internal/api/catalog/models"
	catalogsvc "edu_accredit/internal/api/catalog/service"
	basehdl "edu_accredit/internal/api/base/handler"
)

// AcademicYearHandler xử lý các request CRUD cho năm học
type AcademicYearHandler struct {
	*basehdl.BaseHandler[models.AcademicYear, catalogdto.AcademicYearCreateInput, catalogdto.AcademicYearUpdateInput]
}

// NewAcademicYearHandler tạo instance mới của AcademicYearHandler
func NewAcademicYearHandler() (*AcademicYearHandler, error) {
	service, err := catalogsvc.NewAcademicYearService()
	if err != nil {
		return nil, fmt.Errorf("failed to create academic year service: %v", err)
	}
	return &AcademicYearHandler{
		BaseHandler: basehdl.NewBaseHandler[models.AcademicYear, catalogdto.AcademicYearCreateInput, catalogdto.AcademicYearUpdateInput](service),
	}, nil
}

// ProgramHandler xử lý các request CRUD cho chương trình đánh giá
type ProgramHandler struct {
	*basehdl.BaseHandler[models.Program, catalogdto.ProgramCreateInput, catalogdto.ProgramUpdateInput]
}

// NewProgramHandler tạo instance mới của ProgramHandler
func NewProgramHandler() (*ProgramHandler, error) {
	service, err := catalogsvc.NewProgramService()
	if err != nil {
		return nil, fmt.Errorf("failed to create program service: %v", err)
	}
	return &ProgramHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Program, catalogdto.ProgramCreateInput, catalogdto.ProgramUpdateInput](service),
	}, nil
}

// OrganizationHandler xử lý các request CRUD cho tổ chức - cấp đánh giá
type OrganizationHandler struct {
	*basehdl.BaseHandler[models.Organization, catalogdto.OrganizationCreateInput, catalogdto.OrganizationUpdateInput]
}

// NewOrganizationHandler tạo instance mới của OrganizationHandler
func NewOrganizationHandler() (*OrganizationHandler, error) {
	service, err := catalogsvc.NewOrganizationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create organization service: %v", err)
	}
	return &OrganizationHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Organization, catalogdto.OrganizationCreateInput, catalogdto.OrganizationUpdateInput](service),
	}, nil
}

// StandardHandler xử lý các request CRUD cho tiêu chuẩn
type StandardHandler struct {
	*basehdl.BaseHandler[models.Standard, catalogdto.StandardCreateInput, catalogdto.StandardUpdateInput]
}

// NewStandardHandler tạo instance mới của StandardHandler
func NewStandardHandler() (*StandardHandler, error) {
	service, err := catalogsvc.NewStandardService()
	if err != nil {
		return nil, fmt.Errorf("failed to create standard service: %v", err)
	}
	return &StandardHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Standard, catalogdto.StandardCreateInput, catalogdto.StandardUpdateInput](service),
	}, nil
}

// CriteriaHandler xử lý các request CRUD cho tiêu chí
type CriteriaHandler struct {
	*basehdl.BaseHandler[models.Criteria, catalogdto.CriteriaCreateInput, catalogdto.CriteriaUpdateInput]
}

// NewCriteriaHandler tạo instance mới của CriteriaHandler
func NewCriteriaHandler() (*CriteriaHandler, error) {
	service, err := catalogsvc.NewCriteriaService()
	if err != nil {
		return nil, fmt.Errorf("failed to create criteria service: %v", err)
	}
	return &CriteriaHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Criteria, catalogdto.CriteriaCreateInput, catalogdto.CriteriaUpdateInput](service),
	}, nil
}
