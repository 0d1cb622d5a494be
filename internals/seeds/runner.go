package seeds

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"ibadahku_backend/internals/seeds/admin"
	ibadahtypes "ibadahku_backend/internals/seeds/ibadah_types"
	"ibadahku_backend/internals/seeds/settings"
)

func RunAllSeeds(db *gorm.DB) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	//* Ibadah
	n, err := ibadahtypes.SeedIbadahTypes(ctx, db)
	if err != nil {
		log.Error().Err(err).Msg("❌ Seed jenis ibadah gagal")
	} else {
		log.Info().Int("inserted", n).Msg("✅ Seed jenis ibadah selesai")
	}

	//* Settings
	if err := settings.SeedSettings(ctx, db); err != nil {
		log.Error().Err(err).Msg("❌ Seed admin settings gagal")
	} else {
		log.Info().Msg("✅ Seed admin settings selesai")
	}

	//* Admin pertama (opsional)
	if s, ok := admin.AdminSeedFromEnv(); ok {
		if _, err := admin.SeedAdmin(ctx, db, s); err != nil {
			log.Error().Err(err).Msg("❌ Seed admin gagal")
		}
	}
}
