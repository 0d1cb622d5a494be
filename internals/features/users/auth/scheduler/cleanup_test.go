package scheduler

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ibadahku_backend/internals/helpers/testutil"
)

func TestRunTokenCleanup(t *testing.T) {
	db, mock := testutil.NewMockDB(t)

	mock.ExpectExec(`DELETE FROM token_blacklist WHERE token_blacklist_expired_at <= NOW\(\)`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM refresh_tokens WHERE expires_at <= NOW\(\) OR revoked_at IS NOT NULL`).
		WillReturnResult(sqlmock.NewResult(0, 2))

	RunTokenCleanup(db)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStartTokenCleanupCron_InvalidSpec(t *testing.T) {
	t.Setenv("TOKEN_CLEANUP_CRON", "bukan cron")
	db, _ := testutil.NewMockDB(t)

	c, err := StartTokenCleanupCron(db)
	require.Error(t, err)
	assert.Nil(t, c)
}

func TestStartTokenCleanupCron_Default(t *testing.T) {
	t.Setenv("TOKEN_CLEANUP_CRON", "")
	db, _ := testutil.NewMockDB(t)

	c, err := StartTokenCleanupCron(db)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Len(t, c.Entries(), 1)
	<-c.Stop().Done()
}
