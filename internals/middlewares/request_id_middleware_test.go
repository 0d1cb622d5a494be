package middlewares

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequestIDApp() *fiber.App {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/ping", func(c *fiber.Ctx) error {
		rid, _ := c.Locals(LocRequestID).(string)
		return c.SendString(rid)
	})
	return app
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	resp, err := newRequestIDApp().Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	rid := resp.Header.Get(fiber.HeaderXRequestID)
	assert.Len(t, rid, 36)
	assert.Equal(t, 4, strings.Count(rid, "-"))
}

func TestRequestID_EchoesClientHeader(t *testing.T) {
	req := httptest.NewRequest(fiber.MethodGet, "/ping", nil)
	req.Header.Set(fiber.HeaderXRequestID, "abc-123")

	resp, err := newRequestIDApp().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "abc-123", resp.Header.Get(fiber.HeaderXRequestID))
}

func TestRequestID_ReplacesOversizedHeader(t *testing.T) {
	req := httptest.NewRequest(fiber.MethodGet, "/ping", nil)
	req.Header.Set(fiber.HeaderXRequestID, strings.Repeat("x", 65))

	resp, err := newRequestIDApp().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Len(t, resp.Header.Get(fiber.HeaderXRequestID), 36)
}
