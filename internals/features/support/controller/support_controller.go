package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ibadahku_backend/internals/constants"
	"ibadahku_backend/internals/features/support/dto"
	supportService "ibadahku_backend/internals/features/support/service"
	helper "ibadahku_backend/internals/helpers"
	"ibadahku_backend/internals/middlewares/metrics"
)

type SupportController struct {
	DB *gorm.DB
}

func NewSupportController(db *gorm.DB) *SupportController {
	return &SupportController{DB: db}
}

/* ===================== USER ===================== */

// POST /api/u/support
func (ctl *SupportController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var req dto.CreateSupportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	m, err := supportService.Create(c.UserContext(), ctl.DB, userID, req.Subject, req.Message)
	if err != nil {
		return helper.JsonDBError(c, err, "gagal kirim pesan bantuan")
	}
	metrics.SupportTicketCreated()
	return helper.JsonCreated(c, "Pesan terkirim", m)
}

// GET /api/u/support
func (ctl *SupportController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 100)
	rows, total, err := supportService.ListForUser(c.UserContext(), ctl.DB, userID, p)
	if err != nil {
		return helper.JsonDBError(c, err, "gagal ambil pesan bantuan")
	}
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "ok", rows, &pg)
}

// GET /api/u/support/:id
func (ctl *SupportController) GetMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	m, err := supportService.GetOwned(c.UserContext(), ctl.DB, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pesan tidak ditemukan")
		}
		return helper.JsonDBError(c, err, "gagal ambil pesan bantuan")
	}
	return helper.JsonOK(c, "ok", m)
}

/* ===================== ADMIN ===================== */

// GET /api/a/support?status=
func (ctl *SupportController) AdminList(c *fiber.Ctx) error {
	status := strings.ToLower(strings.TrimSpace(c.Query("status")))
	if status != "" && !validStatus(status) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Status tidak dikenal")
	}
	p := helper.ResolvePaging(c, 20, 100)
	rows, total, err := supportService.AdminList(c.UserContext(), ctl.DB, status, p)
	if err != nil {
		return helper.JsonDBError(c, err, "gagal ambil pesan bantuan")
	}
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "ok", rows, &pg)
}

// PATCH /api/a/support/:id/reply
func (ctl *SupportController) Reply(c *fiber.Ctx) error {
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.ReplySupportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	m, err := supportService.GetByID(c.UserContext(), ctl.DB, id)
	if err != nil {
		return helper.JsonDBError(c, err, "gagal ambil pesan bantuan")
	}
	if err := supportService.Reply(c.UserContext(), ctl.DB, m, req.Reply, req.Status, adminID); err != nil {
		return helper.JsonDBError(c, err, "gagal simpan balasan")
	}
	return helper.JsonUpdated(c, "Balasan terkirim", m)
}

// PATCH /api/a/support/:id/status
func (ctl *SupportController) UpdateStatus(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateSupportStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	m, err := supportService.GetByID(c.UserContext(), ctl.DB, id)
	if err != nil {
		return helper.JsonDBError(c, err, "gagal ambil pesan bantuan")
	}
	if err := supportService.SetStatus(c.UserContext(), ctl.DB, m, req.Status); err != nil {
		return helper.JsonDBError(c, err, "gagal ubah status")
	}
	return helper.JsonUpdated(c, "Status diperbarui", m)
}

func validStatus(s string) bool {
	switch s {
	case constants.SupportOpen, constants.SupportInProgress, constants.SupportResolved, constants.SupportClosed:
		return true
	}
	return false
}
