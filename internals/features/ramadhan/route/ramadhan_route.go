package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ibadahku_backend/internals/features/ramadhan/controller"
)

func RamadhanPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewRamadhanController(db)
	r.Get("/ramadhan", ctl.PublicList)
}

func RamadhanAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewRamadhanController(db)
	g := r.Group("/ramadhan")
	g.Get("/", ctl.AdminList)
	g.Post("/", ctl.Create)
	g.Get("/:id", ctl.Get)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}
