package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRoute "ibadahku_backend/internals/features/admin/route"
	userRoute "ibadahku_backend/internals/features/users/user/route"
)

// 👤 /api/u/profile
func UserUserRoutes(r fiber.Router, db *gorm.DB) {
	userRoute.ProfileUserRoutes(r, db)
}

// 🔐 /api/a/users, /api/a/stats
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	userRoute.UserAdminRoutes(r, db)
	adminRoute.AdminRoutes(r, db)
}
