package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ibadahku_backend/internals/configs"
	adminService "ibadahku_backend/internals/features/admin/service"
	reportController "ibadahku_backend/internals/features/reports/controller"
	reportService "ibadahku_backend/internals/features/reports/service"
	userService "ibadahku_backend/internals/features/users/user/service"
	helper "ibadahku_backend/internals/helpers"
	"ibadahku_backend/internals/helpers/dbtime"
	"ibadahku_backend/internals/middlewares/metrics"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GET /api/a/stats
func (ac *AdminController) Stats(c *fiber.Ctx) error {
	loc := dbtime.Location(configs.AppTimezone)
	s, err := adminService.Collect(c.UserContext(), ac.DB, dbtime.Today(loc), time.Now(), loc)
	if err != nil {
		return helper.JsonDBError(c, err, "gagal ambil statistik")
	}
	return helper.JsonOK(c, "ok", s)
}

// GET /api/a/users/:id/report?from=&to=
func (ac *AdminController) UserReport(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	from, to, err := dbtime.QueryRange(c, dbtime.Location(configs.AppTimezone),
		reportController.ReportDefaultDays, reportController.ReportMaxDays)
	if err != nil {
		return err
	}

	p, err := userService.GetByID(c.UserContext(), ac.DB, id)
	if err != nil {
		return helper.JsonDBError(c, err, "gagal ambil user")
	}
	r, err := reportService.ForUser(c.UserContext(), ac.DB, p.ID, from, to)
	if err != nil {
		return helper.JsonDBError(c, err, "gagal membuat laporan")
	}
	metrics.ReportGenerated("json")
	return helper.JsonOK(c, "ok", fiber.Map{
		"user":   fiber.Map{"id": p.ID, "email": p.Email, "full_name": p.FullName},
		"report": r,
	})
}
