package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ibadahku_backend/internals/helpers/testutil"
)

type publicListBody struct {
	Success bool `json:"success"`
	Data    struct {
		RamadhanMode bool              `json:"ramadhan_mode"`
		Items        []json.RawMessage `json:"items"`
	} `json:"data"`
}

func getPublicList(t *testing.T, app *fiber.App) publicListBody {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ramadhan", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out publicListBody
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestPublicList_ModeOffReturnsEmpty(t *testing.T) {
	t.Setenv("RAMADHAN_MODE_DEFAULT", "false")
	db, mock := testutil.NewMockDB(t)
	mock.ExpectQuery(`SELECT admin_setting_value FROM admin_settings`).
		WillReturnRows(sqlmock.NewRows([]string{"admin_setting_value"}))

	app := fiber.New()
	app.Get("/ramadhan", NewRamadhanController(db).PublicList)

	body := getPublicList(t, app)
	assert.True(t, body.Success)
	assert.False(t, body.Data.RamadhanMode)
	assert.NotNil(t, body.Data.Items)
	assert.Empty(t, body.Data.Items)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPublicList_ModeOnListsPublished(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	mock.ExpectQuery(`SELECT admin_setting_value FROM admin_settings`).
		WillReturnRows(sqlmock.NewRows([]string{"admin_setting_value"}).AddRow([]byte(`true`)))
	mock.ExpectQuery(`SELECT \* FROM "ramadhan_content" WHERE ramadhan_content_is_published`).
		WillReturnRows(sqlmock.NewRows([]string{"ramadhan_content_key", "ramadhan_content_title"}).
			AddRow("niat-puasa", "Niat Puasa"))

	app := fiber.New()
	app.Get("/ramadhan", NewRamadhanController(db).PublicList)

	body := getPublicList(t, app)
	assert.True(t, body.Data.RamadhanMode)
	assert.Len(t, body.Data.Items, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}
