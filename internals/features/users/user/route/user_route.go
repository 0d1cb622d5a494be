package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ibadahku_backend/internals/features/users/user/controller"
)

func ProfileUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewProfileController(db)
	g := r.Group("/profile")
	g.Get("/", ctl.Get)
	g.Patch("/", ctl.Update)
}

func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewUserAdminController(db)
	g := r.Group("/users")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Get)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}
