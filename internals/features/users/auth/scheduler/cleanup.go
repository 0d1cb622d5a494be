package scheduler

import (
	"context"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"ibadahku_backend/internals/configs"
	authRepo "ibadahku_backend/internals/features/users/auth/repository"
	helperauth "ibadahku_backend/internals/helpers/auth"
)

const (
	defaultCleanupSpec = "@daily"
	cleanupTimeout     = 2 * time.Minute
)

// StartTokenCleanupCron jadwalkan pembersihan token_blacklist & refresh_tokens
// (TOKEN_CLEANUP_CRON, default @daily). Panggil Stop() saat shutdown.
func StartTokenCleanupCron(db *gorm.DB) (*cron.Cron, error) {
	spec := strings.TrimSpace(configs.GetEnv("TOKEN_CLEANUP_CRON", defaultCleanupSpec))

	c := cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger)))
	if _, err := c.AddFunc(spec, func() { RunTokenCleanup(db) }); err != nil {
		return nil, err
	}
	c.Start()
	log.Info().Str("spec", spec).Msg("[CLEANUP] scheduler token aktif")
	return c, nil
}

// RunTokenCleanup satu putaran pembersihan; error hanya di-log.
func RunTokenCleanup(db *gorm.DB) {
	ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
	defer cancel()

	if n, err := helperauth.PurgeExpired(ctx, db); err != nil {
		log.Error().Err(err).Msg("[CLEANUP] gagal hapus token_blacklist kadaluarsa")
	} else {
		log.Info().Int64("deleted", n).Msg("[CLEANUP] token_blacklist dibersihkan")
	}

	if n, err := authRepo.PurgeRefreshTokens(ctx, db); err != nil {
		log.Error().Err(err).Msg("[CLEANUP] gagal hapus refresh_tokens")
	} else {
		log.Info().Int64("deleted", n).Msg("[CLEANUP] refresh_tokens dibersihkan")
	}
}
