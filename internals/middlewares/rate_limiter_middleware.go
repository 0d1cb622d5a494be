package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "ibadahku_backend/internals/helpers"
)

func newLimiter(max int, exp time.Duration, key func(*fiber.Ctx) string, msg string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:          max,
		Expiration:   exp,
		KeyGenerator: key,
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, msg)
		},
	})
}

func byIP(c *fiber.Ctx) string { return c.IP() }

// per user kalau sudah login, fallback IP
func byUserOrIP(c *fiber.Ctx) string {
	if uid, ok := c.Locals(helper.LocUserID).(string); ok && uid != "" {
		return "u:" + uid
	}
	return c.IP()
}

// Global limiter: untuk semua endpoint biasa
func GlobalRateLimiter() fiber.Handler {
	return newLimiter(100, 1*time.Minute, byIP,
		"❌ Terlalu banyak permintaan. Silakan coba lagi nanti.")
}

// Rate limiter untuk login route (lebih ketat)
func LoginRateLimiter() fiber.Handler {
	return newLimiter(5, 1*time.Minute, byIP,
		"❌ Terlalu banyak percobaan login. Coba beberapa saat lagi.")
}

// Rate limiter untuk register route
func RegisterRateLimiter() fiber.Handler {
	return newLimiter(3, 5*time.Minute, byIP,
		"❌ Terlalu banyak percobaan pendaftaran. Tunggu beberapa menit ya.")
}

// Export PDF cukup berat, dibatasi per user
func ReportExportRateLimiter() fiber.Handler {
	return newLimiter(10, 10*time.Minute, byUserOrIP,
		"❌ Terlalu banyak permintaan export laporan. Coba lagi dalam beberapa menit.")
}
