package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ibadahku_backend/internals/features/ibadah/subscriptions/controller"
)

func SubscriptionUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewSubscriptionController(db)
	g := r.Group("/my-ibadah")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Subscribe)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}
