package helper

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	LocRawToken       = "raw_token"
	CookieAccessToken = "access_token"
	CookieRefresh     = "refresh_token"
)

// GetRawAccessToken urutan: Authorization Bearer, Locals("raw_token"), cookie access_token.
func GetRawAccessToken(c *fiber.Ctx) string {
	const p = "bearer "
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if len(auth) > len(p) && strings.EqualFold(auth[:len(p)], p) {
		return strings.TrimSpace(auth[len(p):])
	}
	if v, ok := c.Locals(LocRawToken).(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return strings.TrimSpace(c.Cookies(CookieAccessToken))
}

func GetRefreshTokenFromCookie(c *fiber.Ctx) string {
	return strings.TrimSpace(c.Cookies(CookieRefresh))
}

func SetRawAccessToken(c *fiber.Ctx, raw string) {
	if strings.TrimSpace(raw) != "" {
		c.Locals(LocRawToken, strings.TrimSpace(raw))
	}
}

// SetAuthCookies pasang cookie httpOnly untuk access & refresh token.
func SetAuthCookies(c *fiber.Ctx, access, refresh string, accessExp, refreshExp time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieAccessToken,
		Value:    access,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Expires:  accessExp,
	})
	c.Cookie(&fiber.Cookie{
		Name:     CookieRefresh,
		Value:    refresh,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Expires:  refreshExp,
	})
}

func ClearAuthCookies(c *fiber.Ctx) {
	past := time.Now().Add(-time.Hour)
	for _, name := range []string{CookieAccessToken, CookieRefresh} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: true,
			Secure:   true,
			SameSite: "None",
			Expires:  past,
		})
	}
}
