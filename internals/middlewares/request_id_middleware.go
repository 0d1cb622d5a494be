package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/utils"
)

const LocRequestID = "request_id"

// RequestID pakai X-Request-ID dari client kalau ada, selain itu UUID baru.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := strings.TrimSpace(c.Get(fiber.HeaderXRequestID))
		if rid == "" || len(rid) > 64 {
			rid = utils.UUID()
		}
		c.Locals(LocRequestID, rid)
		c.Set(fiber.HeaderXRequestID, rid)
		return c.Next()
	}
}
