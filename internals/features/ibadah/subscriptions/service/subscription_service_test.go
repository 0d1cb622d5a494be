package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ibadahku_backend/internals/helpers/testutil"
)

func TestSubscribe_ReactivatesWithNewTarget(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	userID, typeID, existing := uuid.New(), uuid.New(), uuid.New()

	// konflik (user, jenis): baris lama dipakai lagi, aktif + target baru
	mock.ExpectQuery(`INSERT INTO "user_ibadah" .*ON CONFLICT \("user_ibadah_user_id","user_ibadah_ibadah_type_id"\) DO UPDATE SET "user_ibadah_is_active"=.*"user_ibadah_target_count"=.*RETURNING`).
		WillReturnRows(sqlmock.NewRows([]string{"user_ibadah_id"}).AddRow(existing.String()))

	row, err := Subscribe(context.Background(), db, userID, typeID, 7)
	require.NoError(t, err)
	assert.Equal(t, existing, row.UserIbadahID)
	assert.Equal(t, 7, row.UserIbadahTargetCount)
	assert.True(t, row.UserIbadahIsActive)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscribe_DBError(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	mock.ExpectQuery(`INSERT INTO "user_ibadah"`).WillReturnError(errors.New("connection reset"))

	row, err := Subscribe(context.Background(), db, uuid.New(), uuid.New(), 1)
	assert.Error(t, err)
	assert.Nil(t, row)
}

func TestFindActive_NoRowReturnsNil(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "user_ibadah" WHERE .*user_ibadah_is_active`).
		WillReturnRows(sqlmock.NewRows([]string{"user_ibadah_id"}))

	row, err := FindActive(context.Background(), db, uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, row)
	require.NoError(t, mock.ExpectationsWereMet())
}
