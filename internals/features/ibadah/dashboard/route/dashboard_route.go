package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ibadahku_backend/internals/features/ibadah/dashboard/controller"
)

func DashboardUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewDashboardController(db)
	r.Get("/dashboard", ctl.Get)
}
