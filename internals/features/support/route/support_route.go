package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ibadahku_backend/internals/features/support/controller"
)

func SupportUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewSupportController(db)
	g := r.Group("/support")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.ListMine)
	g.Get("/:id", ctl.GetMine)
}

func SupportAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewSupportController(db)
	g := r.Group("/support")
	g.Get("/", ctl.AdminList)
	g.Patch("/:id/reply", ctl.Reply)
	g.Patch("/:id/status", ctl.UpdateStatus)
}
