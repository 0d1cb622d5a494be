package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ibadahku_backend/internals/features/settings/controller"
)

func SettingPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewSettingController(db)
	r.Get("/settings/app", ctl.PublicApp)
}

func SettingAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewSettingController(db)
	g := r.Group("/settings")
	g.Get("/", ctl.List)
	g.Get("/:key", ctl.Get)
	g.Put("/:key", ctl.Upsert)
}
