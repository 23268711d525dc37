// Package router đăng ký các route thuộc domain catalog: năm học, chương trình, tổ chức, tiêu chuẩn, tiêu chí.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authmodels "edu_accredit/internal/api/auth/models"
	cataloghdl "edu_accredit/internal/api/catalog/handler"
	apirouter "edu_accredit/internal/api/router"
)

// Register đăng ký tất cả route catalog lên v1.
// Ghi danh mục chỉ dành cho admin và manager; đọc cho mọi user đã đăng nhập.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	academicYearHandler, err := cataloghdl.NewAcademicYearHandler()
	if err != nil {
		return fmt.Errorf("failed to create academic year handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/academic-year", academicYearHandler, apirouter.CatalogConfig, authmodels.RoleAdmin, authmodels.RoleManager)

	programHandler, err := cataloghdl.NewProgramHandler()
	if err != nil {
		return fmt.Errorf("failed to create program handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/program", programHandler, apirouter.CatalogConfig, authmodels.RoleAdmin, authmodels.RoleManager)

	organizationHandler, err := cataloghdl.NewOrganizationHandler()
	if err != nil {
		return fmt.Errorf("failed to create organization handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/organization", organizationHandler, apirouter.CatalogConfig, authmodels.RoleAdmin, authmodels.RoleManager)

	standardHandler, err := cataloghdl.NewStandardHandler()
	if err != nil {
		return fmt.Errorf("failed to create standard handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/standard", standardHandler, apirouter.CatalogConfig, authmodels.RoleAdmin, authmodels.RoleManager)

	criteriaHandler, err := cataloghdl.NewCriteriaHandler()
	if err != nil {
		return fmt.Errorf("failed to create criteria handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/criteria", criteriaHandler, apirouter.CatalogConfig, authmodels.RoleAdmin, authmodels.RoleManager)

	return nil
}
