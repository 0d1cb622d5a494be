package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ramadhanRoute "ibadahku_backend/internals/features/ramadhan/route"
	settingRoute "ibadahku_backend/internals/features/settings/route"
	supportRoute "ibadahku_backend/internals/features/support/route"
)

// Konten & konfigurasi aplikasi: settings, ramadhan, support.

func AppPublicRoutes(r fiber.Router, db *gorm.DB) {
	settingRoute.SettingPublicRoutes(r, db)
	ramadhanRoute.RamadhanPublicRoutes(r, db)
}

func AppUserRoutes(r fiber.Router, db *gorm.DB) {
	supportRoute.SupportUserRoutes(r, db)
}

func AppAdminRoutes(r fiber.Router, db *gorm.DB) {
	settingRoute.SettingAdminRoutes(r, db)
	ramadhanRoute.RamadhanAdminRoutes(r, db)
	supportRoute.SupportAdminRoutes(r, db)
}
