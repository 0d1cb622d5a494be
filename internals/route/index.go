// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"ibadahku_backend/internals/constants"
	authMiddleware "ibadahku_backend/internals/middlewares/auth"
	"ibadahku_backend/internals/middlewares/metrics"
	routeDetails "ibadahku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	log.Info().Msg("Setting up BaseRoutes...")
	BaseRoutes(app, db)
	app.Get("/metrics", metrics.Handler())

	// ===================== AUTH =====================
	log.Info().Msg("Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → JWT opsional
	public := app.Group("/api/public", authMiddleware.OptionalAuth(db))

	// PRIVATE (USER)
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))

	// ADMIN
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyAdmin(constants.RoleErrorAdmin("admin")),
	)

	// ===================== MOUNT ROUTES =====================
	log.Info().Msg("Mounting Ibadah routes...")
	routeDetails.IbadahUserRoutes(user, db)
	routeDetails.IbadahAdminRoutes(admin, db)

	log.Info().Msg("Mounting User routes...")
	routeDetails.UserUserRoutes(user, db)
	routeDetails.UserAdminRoutes(admin, db)

	log.Info().Msg("Mounting App routes...")
	routeDetails.AppPublicRoutes(public, db)
	routeDetails.AppUserRoutes(user, db)
	routeDetails.AppAdminRoutes(admin, db)
}
