package middleware

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	models "edu_accredit/internal/api/auth/models"
	authsvc "edu_accredit/internal/api/auth/service"
	"edu_accredit/internal/common"
	"edu_accredit/internal/logger"
	"edu_accredit/internal/utility"
)

// AuthManager quản lý xác thực người dùng
type AuthManager struct {
	UserCRUD *authsvc.UserService
	Cache    *utility.Cache
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

// newAuthManager khởi tạo một instance mới của AuthManager (private constructor)
func newAuthManager() (*AuthManager, error) {
	newManager := new(AuthManager)

	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	newManager.UserCRUD = userService

	// Khởi tạo cache với thời gian sống 5 phút và thời gian dọn dẹp 10 phút
	newManager.Cache = utility.NewCache(5*time.Minute, 10*time.Minute)

	return newManager, nil
}

// findUserByToken tìm user theo token, có cache để giảm tải query database trên mỗi request.
// Cache key theo token nên đổi token (login lại / logout) tự động miss cache.
func (am *AuthManager) findUserByToken(token string) (models.User, error) {
	cacheKey := "user_token:" + token
	if cached, found := am.Cache.Get(cacheKey); found {
		return cached.(models.User), nil
	}

	user, err := am.UserCRUD.FindByToken(context.Background(), token)
	if err != nil {
		return models.User{}, err
	}

	am.Cache.Set(cacheKey, user)
	return user, nil
}

// AuthMiddleware middleware xác thực cho Fiber.
// Xác thực Bearer token, kiểm tra user có bị khóa không, và lưu user vào context.
func AuthMiddleware() fiber.Handler {
	// Sử dụng singleton instance của AuthManager
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			// Chỉ log khi thiếu token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("[AUTH] Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		token := parts[1]

		// Tìm user có token (token được cập nhật mỗi lần login)
		user, err := authManager.findUserByToken(token)
		if err != nil {
			// Chỉ log khi không tìm thấy token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("[AUTH] Token not found in database")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Kiểm tra user có bị block không
		if user.IsBlock {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthCredentials,
				"Tài khoản đã bị khóa: "+user.BlockNote,
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		// Lưu thông tin user vào context
		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", user)

		return c.Next()
	}
}

// RequireRoles middleware kiểm tra role của user đã xác thực.
// Phải đứng sau AuthMiddleware trong chain. Danh sách roles rỗng nghĩa là chấp nhận mọi role.
// Admin luôn được phép.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c fiber.Ctx) error {
		user, ok := c.Locals("user").(models.User)
		if !ok {
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		if user.IsAdmin() || user.HasRole(roles...) {
			return c.Next()
		}

		logger.GetAppLogger().WithFields(logrus.Fields{
			"user_id":        user.ID.Hex(),
			"user_role":      user.Role,
			"required_roles": roles,
			"path":           c.Path(),
		}).Warn("[AUTH] User does not have required role")
		HandleErrorResponse(c, common.NewPermissionError("Bạn không có quyền thực hiện thao tác này"))
		return nil
	}
}

// GetUserFromContext lấy user đã xác thực từ Fiber context. Trả về nil nếu chưa xác thực.
func GetUserFromContext(c fiber.Ctx) *models.User {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return nil
	}
	return &user
}
