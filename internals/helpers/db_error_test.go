package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestClassifyDBError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"nil", nil, fiber.StatusOK},
		{"not found", gorm.ErrRecordNotFound, fiber.StatusNotFound},
		{"wrapped not found", fmt.Errorf("ambil: %w", gorm.ErrRecordNotFound), fiber.StatusNotFound},
		{"unique", &pgconn.PgError{Code: PgUniqueViolation}, fiber.StatusConflict},
		{"gorm duplicated", gorm.ErrDuplicatedKey, fiber.StatusConflict},
		{"fk", &pgconn.PgError{Code: PgForeignKeyViolation}, fiber.StatusConflict},
		{"check", &pgconn.PgError{Code: PgCheckViolation}, fiber.StatusBadRequest},
		{"privilege", &pgconn.PgError{Code: PgInsufficientPriv}, fiber.StatusForbidden},
		{"undefined table", &pgconn.PgError{Code: PgUndefinedTable}, fiber.StatusInternalServerError},
		{"lain-lain", errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, _ := ClassifyDBError(tc.err)
			assert.Equal(t, tc.status, status)
		})
	}
}

func TestIsDuplicateKey_MessageFallback(t *testing.T) {
	assert.True(t, IsDuplicateKey(errors.New(`ERROR: duplicate key value violates unique constraint "uq_profiles_email"`)))
	assert.False(t, IsDuplicateKey(nil))
	assert.False(t, IsDuplicateKey(errors.New("timeout")))
}

func TestPgCode(t *testing.T) {
	wrapped := fmt.Errorf("insert: %w", &pgconn.PgError{Code: PgUndefinedColumn})
	assert.Equal(t, PgUndefinedColumn, PgCode(wrapped))
	assert.True(t, IsUndefinedColumn(wrapped))
	assert.Equal(t, "", PgCode(errors.New("x")))
}
