// Package catalogsvc - service cho các model danh mục: năm học, chương trình, tổ chức, tiêu chuẩn, tiêu chí.
package catalogsvc

import (
	"fmt"

	models "edu_accredit/internal/api/catalog/models"
	basesvc "edu_accredit/internal/api/base/service"
	"edu_accredit/internal/common"
	"edu_accredit/internal/global"
)

// AcademicYearService là service CRUD cho năm học
type AcademicYearService struct {
	*basesvc.BaseServiceMongoImpl[models.AcademicYear]
}

// NewAcademicYearService tạo mới AcademicYearService
func NewAcademicYearService() (*AcademicYearService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.AcademicYears)
	if !exist {
		return nil, fmt.Errorf("failed to get academic_years collection: %v", common.ErrNotFound)
	}
	return &AcademicYearService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.AcademicYear](collection),
	}, nil
}

// ProgramService là service CRUD cho chương trình đánh giá
type ProgramService struct {
	*basesvc.BaseServiceMongoImpl[models.Program]
}

// NewProgramService tạo mới ProgramService
func NewProgramService() (*ProgramService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Programs)
	if !exist {
		return nil, fmt.Errorf("failed to get programs collection: %v", common.ErrNotFound)
	}
	return &ProgramService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Program](collection),
	}, nil
}

// OrganizationService là service CRUD cho tổ chức - cấp đánh giá
type OrganizationService struct {
	*basesvc.BaseServiceMongoImpl[models.Organization]
}

// NewOrganizationService tạo mới OrganizationService
func NewOrganizationService() (*OrganizationService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Organizations)
	if !exist {
		return nil, fmt.Errorf("failed to get organizations collection: %v", common.ErrNotFound)
	}
	return &OrganizationService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Organization](collection),
	}, nil
}

// StandardService là service CRUD cho tiêu chuẩn
type StandardService struct {
	*basesvc.BaseServiceMongoImpl[models.Standard]
}

// NewStandardService tạo mới StandardService
func NewStandardService() (*StandardService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Standards)
	if !exist {
		return nil, fmt.Errorf("failed to get standards collection: %v", common.ErrNotFound)
	}
	return &StandardService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Standard](collection),
	}, nil
}

// CriteriaService là service CRUD cho tiêu chí
type CriteriaService struct {
	*basesvc.BaseServiceMongoImpl[models.Criteria]
}

// NewCriteriaService tạo mới CriteriaService
func NewCriteriaService() (*CriteriaService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Criterias)
	if !exist {
		return nil, fmt.Errorf("failed to get criterias collection: %v", common.ErrNotFound)
	}
	return &CriteriaService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Criteria](collection),
	}, nil
}
