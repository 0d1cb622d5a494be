package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ibadahku_backend/internals/features/admin/controller"
)

// Mount di bawah /api/a (sudah lewat AuthMiddleware + OnlyAdmin).
func AdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAdminController(db)
	r.Get("/stats", ctl.Stats)
	r.Get("/users/:id/report", ctl.UserReport)
}
