package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ibadahku_backend/internals/features/muhasabah/controller"
)

func MuhasabahUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewMuhasabahController(db)
	g := r.Group("/muhasabah")
	g.Get("/", ctl.List)
	g.Get("/by-date", ctl.GetByDate)
	g.Put("/", ctl.Upsert)
	g.Delete("/:id", ctl.Delete)
}
