package helper

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolvePagingFor(t *testing.T, query string) Paging {
	t.Helper()
	var got Paging
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return nil
	})
	_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/"+query, nil))
	require.NoError(t, err)
	return got
}

func TestResolvePaging(t *testing.T) {
	assert.Equal(t, Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}, resolvePagingFor(t, ""))
	assert.Equal(t, Paging{Page: 3, PerPage: 10, Offset: 20, Limit: 10}, resolvePagingFor(t, "?page=3&per_page=10"))
	assert.Equal(t, Paging{Page: 1, PerPage: 5, Offset: 0, Limit: 5}, resolvePagingFor(t, "?limit=5"))
	assert.Equal(t, 100, resolvePagingFor(t, "?per_page=1000").PerPage)
	assert.Equal(t, 1, resolvePagingFor(t, "?page=-2").Page)
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	empty := BuildPaginationFromPage(0, 1, 20)
	assert.Equal(t, 1, empty.TotalPages)
	assert.False(t, empty.HasNext)
}

func TestJsonValidationError(t *testing.T) {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		type req struct {
			Email string `json:"email" validate:"required,email"`
		}
		return JsonValidationError(c, ValidateStruct(&req{Email: "bukan-email"}))
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"email":["format email tidak valid"]`)
	assert.Contains(t, string(body), `"error_code":"VALIDATION_ERROR"`)
}
