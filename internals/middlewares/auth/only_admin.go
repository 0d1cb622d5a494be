package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "ibadahku_backend/internals/helpers"
)

// OnlyAdmin dipasang setelah AuthMiddleware.
func OnlyAdmin(message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals(helper.LocUserID) == nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		if !helper.IsAdmin(c) {
			return helper.JsonError(c, fiber.StatusForbidden, message)
		}
		return c.Next()
	}
}
