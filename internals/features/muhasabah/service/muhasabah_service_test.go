package service

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "ibadahku_backend/internals/helpers"
	"ibadahku_backend/internals/helpers/testutil"
)

func TestSelectColumns(t *testing.T) {
	assert.NotContains(t, selectColumns(false), moodColumn)
	assert.Contains(t, selectColumns(true), moodColumn)
}

func TestList_FallsBackWhenMoodColumnMissing(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	moodColumnSeen.Store(true)
	t.Cleanup(func() { moodColumnSeen.Store(false) })

	userID := uuid.New()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "muhasabah_entries"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT .*muhasabah_mood.* FROM "muhasabah_entries"`).
		WillReturnError(&pgconn.PgError{Code: helper.PgUndefinedColumn})
	mock.ExpectQuery(`SELECT .* FROM "muhasabah_entries"`).
		WillReturnRows(sqlmock.NewRows([]string{"muhasabah_id", "muhasabah_user_id", "muhasabah_entry_date", "muhasabah_content"}).
			AddRow(uuid.New(), userID, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), "Alhamdulillah"))

	rows, total, err := List(context.Background(), db, userID, helper.Paging{Page: 1, PerPage: 20, Limit: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, "Alhamdulillah", rows[0].MuhasabahContent)
	assert.Nil(t, rows[0].MuhasabahMood)
	assert.False(t, moodColumnSeen.Load())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByDate_NoEntry(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	moodColumnSeen.Store(true)
	t.Cleanup(func() { moodColumnSeen.Store(false) })

	mock.ExpectQuery(`SELECT .* FROM "muhasabah_entries"`).
		WillReturnRows(sqlmock.NewRows([]string{"muhasabah_id"}))

	got, err := GetByDate(context.Background(), db, uuid.New(), time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
