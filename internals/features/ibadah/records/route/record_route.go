package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ibadahku_backend/internals/features/ibadah/records/controller"
)

func RecordUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewRecordController(db)
	g := r.Group("/records")
	g.Get("/", ctl.ListByDate)
	g.Get("/range", ctl.ListRange)
	g.Put("/", ctl.Upsert)
	g.Delete("/:id", ctl.Delete)
}
