// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ibadahku_backend/internals/features/users/auth/controller"
	rateLimiter "ibadahku_backend/internals/middlewares"
	authMiddleware "ibadahku_backend/internals/middlewares/auth"
)

// AuthRoutes base: /api/auth
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	baseAuth := app.Group("/api/auth")

	// 🔓 Public
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/login-google", rateLimiter.LoginRateLimiter(), authController.LoginGoogle)
	baseAuth.Post("/refresh-token", authController.RefreshToken)
	baseAuth.Post("/logout", authController.Logout)

	// 🔐 Protected
	requireAuth := authMiddleware.AuthMiddleware(db)
	baseAuth.Post("/change-password", requireAuth, authController.ChangePassword)
	baseAuth.Get("/me", requireAuth, authController.Me)
}
