package admin

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ibadahku_backend/internals/helpers/testutil"
)

func TestAdminSeedFromEnv(t *testing.T) {
	t.Setenv("SEED_ADMIN_EMAIL", "  Admin@Ibadahku.ID ")
	t.Setenv("SEED_ADMIN_PASSWORD", "rahasia123")
	t.Setenv("SEED_ADMIN_NAME", "")

	s, ok := AdminSeedFromEnv()
	require.True(t, ok)
	assert.Equal(t, "admin@ibadahku.id", s.Email)
	assert.Equal(t, "Administrator", s.FullName)

	t.Setenv("SEED_ADMIN_PASSWORD", "")
	_, ok = AdminSeedFromEnv()
	assert.False(t, ok)
}

func TestSeedAdmin_SkipsExisting(t *testing.T) {
	db, mock := testutil.NewMockDB(t)

	mock.ExpectQuery(`SELECT "id" FROM "profiles" WHERE LOWER\(email\) = \$1`).
		WithArgs("admin@ibadahku.id", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))

	created, err := SeedAdmin(context.Background(), db, AdminSeed{Email: "admin@ibadahku.id", Password: "x", FullName: "Admin"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedAdmin_Creates(t *testing.T) {
	db, mock := testutil.NewMockDB(t)

	mock.ExpectQuery(`SELECT "id" FROM "profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO "profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))

	created, err := SeedAdmin(context.Background(), db, AdminSeed{Email: "admin@ibadahku.id", Password: "rahasia123", FullName: "Admin"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}
