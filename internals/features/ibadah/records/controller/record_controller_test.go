package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ibadahku_backend/internals/configs"
	"ibadahku_backend/internals/constants"
	helper "ibadahku_backend/internals/helpers"
	"ibadahku_backend/internals/helpers/dbtime"
	"ibadahku_backend/internals/helpers/testutil"
)

func newRecordApp(t *testing.T, userID uuid.UUID) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := testutil.NewMockDB(t)
	ctl := NewRecordController(db)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helper.LocUserID, userID.String())
		return c.Next()
	})
	app.Put("/records", ctl.Upsert)
	return app, mock
}

func doPut(t *testing.T, app *fiber.App, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPut, "/records", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	_ = json.Unmarshal(raw, &out)
	return resp.StatusCode, out
}

func expectSubscription(mock sqlmock.Sqlmock, userID, typeID uuid.UUID, target int) {
	mock.ExpectQuery(`SELECT \* FROM "user_ibadah"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"user_ibadah_id", "user_ibadah_user_id", "user_ibadah_ibadah_type_id",
			"user_ibadah_target_count", "user_ibadah_is_active",
		}).AddRow(uuid.New().String(), userID.String(), typeID.String(), target, true))
}

func expectType(mock sqlmock.Sqlmock, typeID uuid.UUID, tracking string) {
	mock.ExpectQuery(`SELECT \* FROM "ibadah_types"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"ibadah_type_id", "ibadah_type_code", "ibadah_type_name",
			"ibadah_type_tracking_type", "ibadah_type_is_active",
		}).AddRow(typeID.String(), "tilawah", "Tilawah", tracking, true))
}

func expectRecordInsert(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(`INSERT INTO "ibadah_records" .*ON CONFLICT`).
		WillReturnRows(sqlmock.NewRows([]string{"ibadah_record_id"}).AddRow(uuid.New().String()))
}

func TestUpsert_FutureDateRejected(t *testing.T) {
	app, mock := newRecordApp(t, uuid.New())
	tomorrow := dbtime.Today(dbtime.Location(configs.AppTimezone)).AddDate(0, 0, 2)

	status, body := doPut(t, app, `{"ibadah_type_id":"`+uuid.NewString()+`","record_date":"`+dbtime.DateKey(tomorrow)+`","is_completed":true}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_NotSubscribedForbidden(t *testing.T) {
	app, mock := newRecordApp(t, uuid.New())
	mock.ExpectQuery(`SELECT \* FROM "user_ibadah"`).
		WillReturnRows(sqlmock.NewRows([]string{"user_ibadah_id"}))

	status, _ := doPut(t, app, `{"ibadah_type_id":"`+uuid.NewString()+`","is_completed":true}`)

	assert.Equal(t, fiber.StatusForbidden, status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_CountUsesSubscriptionTarget(t *testing.T) {
	userID, typeID := uuid.New(), uuid.New()

	cases := []struct {
		name   string
		count  string
		target int
		want   bool
	}{
		{"below target", "3", 5, false},
		{"reaches target", "5", 5, true},
		{"lowered target", "2", 2, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app, mock := newRecordApp(t, userID)
			expectSubscription(mock, userID, typeID, tc.target)
			expectType(mock, typeID, constants.TrackingCount)
			expectRecordInsert(mock)

			status, body := doPut(t, app, `{"ibadah_type_id":"`+typeID.String()+`","count_value":`+tc.count+`}`)

			require.Equal(t, fiber.StatusOK, status)
			data, ok := body["data"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, tc.want, data["ibadah_record_is_completed"])
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpsert_CountRequiresCountValue(t *testing.T) {
	userID, typeID := uuid.New(), uuid.New()
	app, mock := newRecordApp(t, userID)
	expectSubscription(mock, userID, typeID, 5)
	expectType(mock, typeID, constants.TrackingCount)

	status, body := doPut(t, app, `{"ibadah_type_id":"`+typeID.String()+`"}`)

	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	errs, _ := body["errors"].(map[string]any)
	assert.Contains(t, errs, "count_value")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_ChecklistRequiresIsCompleted(t *testing.T) {
	userID, typeID := uuid.New(), uuid.New()
	app, mock := newRecordApp(t, userID)
	expectSubscription(mock, userID, typeID, 1)
	expectType(mock, typeID, constants.TrackingChecklist)

	status, body := doPut(t, app, `{"ibadah_type_id":"`+typeID.String()+`","count_value":1}`)

	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	errs, _ := body["errors"].(map[string]any)
	assert.Contains(t, errs, "is_completed")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_ChecklistDoneStoresCountOne(t *testing.T) {
	userID, typeID := uuid.New(), uuid.New()
	app, mock := newRecordApp(t, userID)
	expectSubscription(mock, userID, typeID, 1)
	expectType(mock, typeID, constants.TrackingChecklist)
	expectRecordInsert(mock)

	status, body := doPut(t, app, `{"ibadah_type_id":"`+typeID.String()+`","is_completed":true}`)

	require.Equal(t, fiber.StatusOK, status)
	data := body["data"].(map[string]any)
	assert.Equal(t, true, data["ibadah_record_is_completed"])
	assert.EqualValues(t, 1, data["ibadah_record_count_value"])
	require.NoError(t, mock.ExpectationsWereMet())
}
