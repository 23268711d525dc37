package global

import (
	"edu_accredit/config"
	"edu_accredit/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionNames chứa tên các collection trong MongoDB
type CollectionNames struct {
	Users          string // Tên collection cho người dùng
	AcademicYears  string // Tên collection cho năm học
	Programs       string // Tên collection cho chương trình đào tạo
	Organizations  string // Tên collection cho tổ chức/đơn vị
	Standards      string // Tên collection cho tiêu chuẩn
	Criterias      string // Tên collection cho tiêu chí
	Reports        string // Tên collection cho báo cáo phân tích
	ReportRequests string // Tên collection cho yêu cầu viết báo cáo
	ActivityLogs   string // Tên collection cho nhật ký hoạt động (append-only)
	Notifications  string // Tên collection cho thông báo trong hệ thống
}

// Các biến toàn cục
var Validate *validator.Validate              // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client             // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration        // Cấu hình của server
var MongoDB_ColNames CollectionNames          // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
