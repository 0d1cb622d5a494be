package dbtime

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) time.Time {
	t, _ := time.Parse(DateLayout, s)
	return t
}

func TestDateOf_UsesLocation(t *testing.T) {
	wib := time.FixedZone("WIB", 7*3600)
	// 2025-03-01 20:00 UTC = 2 Maret di WIB
	got := DateOf(time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC), wib)
	assert.Equal(t, d("2025-03-02"), got)
}

func TestLocation_Fallback(t *testing.T) {
	assert.NotNil(t, Location("Zona/TidakAda"))
	assert.Equal(t, Location(""), Location("Asia/Jakarta"))
}

func TestDateRange(t *testing.T) {
	r := DateRange(d("2025-02-27"), d("2025-03-02"))
	require.Len(t, r, 4)
	assert.Equal(t, "2025-02-28", DateKey(r[1]))
	assert.Nil(t, DateRange(d("2025-03-02"), d("2025-03-01")))
	assert.Equal(t, 3, DaysBetween(d("2025-02-27"), d("2025-03-02")))
}

func TestParseDate(t *testing.T) {
	_, err := ParseDate("01-03-2025")
	assert.Error(t, err)
	got, err := ParseDate(" 2025-03-01 ")
	require.NoError(t, err)
	assert.Equal(t, d("2025-03-01"), got)
}

func rangeStatus(t *testing.T, query string) (int, time.Time, time.Time) {
	t.Helper()
	var from, to time.Time
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		var err error
		from, to, err = QueryRange(c, time.UTC, 7, 31)
		if err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/"+query, nil))
	require.NoError(t, err)
	return resp.StatusCode, from, to
}

func TestQueryRange(t *testing.T) {
	status, from, to := rangeStatus(t, "?from=2025-03-01&to=2025-03-10")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, d("2025-03-01"), from)
	assert.Equal(t, d("2025-03-10"), to)

	status, from, to = rangeStatus(t, "?to=2025-03-10")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, d("2025-03-04"), from)
	assert.Equal(t, 6, DaysBetween(from, to))

	status, _, _ = rangeStatus(t, "?from=2025-03-10&to=2025-03-01")
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _, _ = rangeStatus(t, "?from=2025-01-01&to=2025-03-01")
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _, _ = rangeStatus(t, "?from=kemarin")
	assert.Equal(t, fiber.StatusBadRequest, status)
}
