package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardRoute "ibadahku_backend/internals/features/ibadah/dashboard/route"
	recordRoute "ibadahku_backend/internals/features/ibadah/records/route"
	subscriptionRoute "ibadahku_backend/internals/features/ibadah/subscriptions/route"
	typeRoute "ibadahku_backend/internals/features/ibadah/types/route"
	muhasabahRoute "ibadahku_backend/internals/features/muhasabah/route"
	reportRoute "ibadahku_backend/internals/features/reports/route"
)

func IbadahUserRoutes(r fiber.Router, db *gorm.DB) {
	typeRoute.IbadahTypeUserRoutes(r, db)
	subscriptionRoute.SubscriptionUserRoutes(r, db)
	recordRoute.RecordUserRoutes(r, db)
	dashboardRoute.DashboardUserRoutes(r, db)
	muhasabahRoute.MuhasabahUserRoutes(r, db)
	reportRoute.ReportUserRoutes(r, db)
}

func IbadahAdminRoutes(r fiber.Router, db *gorm.DB) {
	typeRoute.IbadahTypeAdminRoutes(r, db)
}
