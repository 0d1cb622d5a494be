package controller

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ibadahku_backend/internals/configs"
	reportService "ibadahku_backend/internals/features/reports/service"
	helper "ibadahku_backend/internals/helpers"
	"ibadahku_backend/internals/helpers/dbtime"
	"ibadahku_backend/internals/middlewares/metrics"
)

const (
	ReportDefaultDays = 30
	ReportMaxDays     = 366
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// GET /api/u/reports?from=&to=
func (ctl *ReportController) Summary(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	from, to, err := dbtime.QueryRange(c, dbtime.Location(configs.AppTimezone), ReportDefaultDays, ReportMaxDays)
	if err != nil {
		return err
	}
	r, err := reportService.ForUser(c.UserContext(), ctl.DB, userID, from, to)
	if err != nil {
		return helper.JsonDBError(c, err, "gagal membuat laporan")
	}
	metrics.ReportGenerated("json")
	return helper.JsonOK(c, "ok", r)
}

// GET /api/u/reports/pdf?from=&to=
func (ctl *ReportController) ExportPDF(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	loc := dbtime.Location(configs.AppTimezone)
	from, to, err := dbtime.QueryRange(c, loc, ReportDefaultDays, ReportMaxDays)
	if err != nil {
		return err
	}
	r, err := reportService.ForUser(c.UserContext(), ctl.DB, userID, from, to)
	if err != nil {
		return helper.JsonDBError(c, err, "gagal membuat laporan")
	}

	name, _ := c.Locals(helper.LocUserName).(string)
	var buf bytes.Buffer
	if err := reportService.WritePDF(&buf, name, r, time.Now().In(loc)); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat PDF laporan")
	}
	metrics.ReportGenerated("pdf")

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="laporan-ibadah-%s-%s.pdf"`, r.From, r.To))
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}
