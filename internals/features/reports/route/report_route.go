package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ibadahku_backend/internals/features/reports/controller"
	"ibadahku_backend/internals/middlewares"
)

func ReportUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewReportController(db)
	g := r.Group("/reports")
	g.Get("/", ctl.Summary)
	g.Get("/pdf", middlewares.ReportExportRateLimiter(), ctl.ExportPDF)
}
