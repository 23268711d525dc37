package main

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	authmodels "edu_accredit/internal/api/auth/models"
	authsvc "edu_accredit/internal/api/auth/service"
	"edu_accredit/internal/global"
	"edu_accredit/internal/logger"
)

// InitDefaultData khởi tạo dữ liệu mặc định cho hệ thống.
// Hiện tại chỉ seed tài khoản admin đầu tiên khi hệ thống chưa có admin nào.
func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Starting InitDefaultData...")

	userService, err := authsvc.NewUserService()
	if err != nil {
		log.Fatalf("Failed to initialize user service: %v", err)
	}

	ctx := context.Background()
	cfg := global.ServerConfig

	// Seed admin đầu tiên. Bỏ qua nếu đã có admin trong hệ thống.
	adminCount, err := userService.CountDocuments(ctx, bson.M{"role": authmodels.RoleAdmin})
	if err != nil {
		log.WithError(err).Error("❌ [INIT] Failed to count admin users")
		return
	}
	if adminCount > 0 {
		log.Info("✅ [INIT] Admin user already exists, skipping seed")
		return
	}

	if cfg.DefaultAdminPassword == "" {
		log.Warn("⚠️ [INIT] DEFAULT_ADMIN_PASSWORD not set, skipping admin seed")
		log.Info("Tạo admin thủ công qua API /user/create với tài khoản admin khác, hoặc set DEFAULT_ADMIN_PASSWORD rồi khởi động lại")
		return
	}

	admin, err := userService.CreateUser(ctx, authmodels.User{
		Name:  cfg.DefaultAdminName,
		Email: cfg.DefaultAdminEmail,
		Role:  authmodels.RoleAdmin,
	}, cfg.DefaultAdminPassword)
	if err != nil {
		log.WithError(err).Error("❌ [INIT] Failed to seed default admin user")
		return
	}

	log.Infof("✅ [INIT] Default admin user seeded successfully (ID: %s, email: %s)", admin.ID.Hex(), admin.Email)
	log.Info("✅ [INIT] InitDefaultData completed successfully")
}
