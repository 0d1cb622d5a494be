package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ibadahku_backend/internals/configs"
	dashboardService "ibadahku_backend/internals/features/ibadah/dashboard/service"
	settingService "ibadahku_backend/internals/features/settings/service"
	helper "ibadahku_backend/internals/helpers"
	"ibadahku_backend/internals/helpers/dbtime"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GET /api/u/dashboard?date=
func (ctl *DashboardController) Get(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	date, err := dbtime.QueryDate(c, "date", dbtime.Location(configs.AppTimezone))
	if err != nil {
		return err
	}
	ctx := c.UserContext()
	ramadhan := settingService.IsRamadhanMode(ctx, ctl.DB)
	d, err := dashboardService.BuildDashboard(ctx, ctl.DB, userID, date, ramadhan)
	if err != nil {
		return helper.JsonDBError(c, err, "gagal memuat dashboard")
	}
	return helper.JsonOK(c, "ok", d)
}
