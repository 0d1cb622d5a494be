package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ibadahku_backend/internals/features/ibadah/types/controller"
)

func IbadahTypeUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewIbadahTypeController(db)
	r.Get("/ibadah-types", ctl.ListForUser)
}

func IbadahTypeAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewIbadahTypeController(db)
	g := r.Group("/ibadah-types")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Get("/:id", ctl.Get)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}
