package settings

import (
	"context"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"ibadahku_backend/internals/constants"
	settingService "ibadahku_backend/internals/features/settings/service"
)

type settingSeed struct {
	key         string
	value       string
	description string
}

var defaultSettings = []settingSeed{
	{constants.SettingRamadhanMode, `false`, "Aktifkan mode Ramadhan (ibadah khusus Ramadhan tampil di dashboard)"},
	{constants.SettingAppName, `"Ibadahku"`, "Nama aplikasi"},
	{constants.SettingMaintenanceMode, `false`, "Tampilkan banner maintenance di aplikasi"},
	{constants.SettingAnnouncement, `""`, "Pengumuman singkat untuk semua user"},
}

// SeedSettings insert key default; nilai yang sudah diubah admin tidak disentuh.
func SeedSettings(ctx context.Context, db *gorm.DB) error {
	for _, s := range defaultSettings {
		if err := settingService.EnsureDefault(ctx, db, s.key, datatypes.JSON(s.value), s.description); err != nil {
			return err
		}
		log.Debug().Str("key", s.key).Msg("[SEED] Setting default dipastikan")
	}
	return nil
}
