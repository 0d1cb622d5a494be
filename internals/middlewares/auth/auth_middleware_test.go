package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ibadahku_backend/internals/configs"
	helper "ibadahku_backend/internals/helpers"
	"ibadahku_backend/internals/helpers/testutil"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

func accessClaims(id uuid.UUID, exp time.Time) jwt.MapClaims {
	return jwt.MapClaims{"typ": "access", "id": id.String(), "exp": exp.Unix()}
}

func newApp(db *gorm.DB, extra ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers := append([]fiber.Handler{AuthMiddleware(db)}, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":  c.Locals(helper.LocUserID),
			"is_admin": c.Locals(helper.LocIsAdmin),
		})
	})
	app.Get("/private", handlers...)
	return app
}

func expectBlacklist(mock sqlmock.Sqlmock, blacklisted bool) {
	mock.ExpectQuery(`SELECT EXISTS`).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(blacklisted))
}

func expectProfile(mock sqlmock.Sqlmock, id uuid.UUID, isAdmin, isActive bool) {
	mock.ExpectQuery(`SELECT id, full_name, is_admin, is_active FROM profiles`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "is_admin", "is_active"}).
			AddRow(id, "Hamba Allah", isAdmin, isActive))
}

func doGet(t *testing.T, app *fiber.App, token string) int {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, "/private", nil)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func setSecret(t *testing.T) {
	prev := configs.JWTSecret
	configs.JWTSecret = testSecret
	t.Cleanup(func() { configs.JWTSecret = prev })
}

func TestAuthMiddleware_NoToken(t *testing.T) {
	setSecret(t)
	db, mock := testutil.NewMockDB(t)

	assert.Equal(t, fiber.StatusUnauthorized, doGet(t, newApp(db), ""))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	setSecret(t)
	db, mock := testutil.NewMockDB(t)
	id := uuid.New()

	expectBlacklist(mock, false)
	expectProfile(mock, id, false, true)

	tok := signToken(t, accessClaims(id, time.Now().Add(time.Hour)))
	assert.Equal(t, fiber.StatusOK, doGet(t, newApp(db), tok))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthMiddleware_Blacklisted(t *testing.T) {
	setSecret(t)
	db, mock := testutil.NewMockDB(t)

	expectBlacklist(mock, true)

	tok := signToken(t, accessClaims(uuid.New(), time.Now().Add(time.Hour)))
	assert.Equal(t, fiber.StatusUnauthorized, doGet(t, newApp(db), tok))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthMiddleware_Expired(t *testing.T) {
	setSecret(t)
	db, mock := testutil.NewMockDB(t)

	expectBlacklist(mock, false)

	tok := signToken(t, accessClaims(uuid.New(), time.Now().Add(-time.Hour)))
	assert.Equal(t, fiber.StatusUnauthorized, doGet(t, newApp(db), tok))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthMiddleware_RefreshTokenRejected(t *testing.T) {
	setSecret(t)
	db, mock := testutil.NewMockDB(t)

	expectBlacklist(mock, false)

	claims := accessClaims(uuid.New(), time.Now().Add(time.Hour))
	claims["typ"] = "refresh"
	assert.Equal(t, fiber.StatusUnauthorized, doGet(t, newApp(db), signToken(t, claims)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	setSecret(t)
	db, mock := testutil.NewMockDB(t)

	expectBlacklist(mock, false)

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims(uuid.New(), time.Now().Add(time.Hour))).
		SignedString([]byte("bukan-secret"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, doGet(t, newApp(db), tok))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthMiddleware_InactiveUser(t *testing.T) {
	setSecret(t)
	db, mock := testutil.NewMockDB(t)
	id := uuid.New()

	expectBlacklist(mock, false)
	expectProfile(mock, id, false, false)

	tok := signToken(t, accessClaims(id, time.Now().Add(time.Hour)))
	assert.Equal(t, fiber.StatusForbidden, doGet(t, newApp(db), tok))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthMiddleware_UnknownUser(t *testing.T) {
	setSecret(t)
	db, mock := testutil.NewMockDB(t)
	id := uuid.New()

	expectBlacklist(mock, false)
	mock.ExpectQuery(`SELECT id, full_name, is_admin, is_active FROM profiles`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "is_admin", "is_active"}))

	tok := signToken(t, accessClaims(id, time.Now().Add(time.Hour)))
	assert.Equal(t, fiber.StatusUnauthorized, doGet(t, newApp(db), tok))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOnlyAdmin(t *testing.T) {
	setSecret(t)
	id := uuid.New()
	tok := signToken(t, accessClaims(id, time.Now().Add(time.Hour)))

	t.Run("bukan admin", func(t *testing.T) {
		db, mock := testutil.NewMockDB(t)
		expectBlacklist(mock, false)
		expectProfile(mock, id, false, true)

		app := newApp(db, OnlyAdmin("Akses khusus admin"))
		assert.Equal(t, fiber.StatusForbidden, doGet(t, app, tok))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("admin", func(t *testing.T) {
		db, mock := testutil.NewMockDB(t)
		expectBlacklist(mock, false)
		expectProfile(mock, id, true, true)

		app := newApp(db, OnlyAdmin("Akses khusus admin"))
		assert.Equal(t, fiber.StatusOK, doGet(t, app, tok))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOptionalAuth_InvalidTokenContinues(t *testing.T) {
	setSecret(t)
	db, mock := testutil.NewMockDB(t)

	app := fiber.New()
	app.Get("/public", OptionalAuth(db), func(c *fiber.Ctx) error {
		if c.Locals(helper.LocUserID) != nil {
			return c.SendStatus(fiber.StatusTeapot)
		}
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(fiber.MethodGet, "/public", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer rusak")
	expectBlacklist(mock, false)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
