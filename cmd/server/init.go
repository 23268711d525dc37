package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"edu_accredit/config"
	authmodels "edu_accredit/internal/api/auth/models"
	catalogmodels "edu_accredit/internal/api/catalog/models"
	reportmodels "edu_accredit/internal/api/report/models"
	"edu_accredit/internal/database"
	"edu_accredit/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "users"

	// Danh mục kiểm định (năm học, chương trình, tổ chức, tiêu chuẩn, tiêu chí)
	global.MongoDB_ColNames.AcademicYears = "academic_years"
	global.MongoDB_ColNames.Programs = "programs"
	global.MongoDB_ColNames.Organizations = "organizations"
	global.MongoDB_ColNames.Standards = "standards"
	global.MongoDB_ColNames.Criterias = "criterias"

	// Báo cáo tự đánh giá và yêu cầu viết báo cáo
	global.MongoDB_ColNames.Reports = "reports"
	global.MongoDB_ColNames.ReportRequests = "report_requests"

	// Nhật ký hoạt động và thông báo
	global.MongoDB_ColNames.ActivityLogs = "activity_logs"
	global.MongoDB_ColNames.Notifications = "notifications"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, str_objectid, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khởi tạo các index cho các collection
	dbName := global.ServerConfig.MongoDB_DBName
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.MongoDB_ColNames.Users), authmodels.User{})

	// Danh mục kiểm định
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.MongoDB_ColNames.AcademicYears), catalogmodels.AcademicYear{})
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.MongoDB_ColNames.Programs), catalogmodels.Program{})
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.MongoDB_ColNames.Organizations), catalogmodels.Organization{})
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.MongoDB_ColNames.Standards), catalogmodels.Standard{})
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.MongoDB_ColNames.Criterias), catalogmodels.Criteria{})

	// Báo cáo và yêu cầu viết báo cáo
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.MongoDB_ColNames.Reports), reportmodels.Report{})
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.MongoDB_ColNames.ReportRequests), reportmodels.ReportRequest{})

	// Nhật ký hoạt động và thông báo
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.MongoDB_ColNames.ActivityLogs), reportmodels.ActivityLog{})
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.MongoDB_ColNames.Notifications), reportmodels.Notification{})
}
