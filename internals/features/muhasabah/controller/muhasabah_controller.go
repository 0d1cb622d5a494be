package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ibadahku_backend/internals/configs"
	"ibadahku_backend/internals/features/muhasabah/dto"
	muhasabahModel "ibadahku_backend/internals/features/muhasabah/model"
	muhasabahService "ibadahku_backend/internals/features/muhasabah/service"
	helper "ibadahku_backend/internals/helpers"
	"ibadahku_backend/internals/helpers/dbtime"
	"ibadahku_backend/internals/middlewares/metrics"
)

type MuhasabahController struct {
	DB *gorm.DB
}

func NewMuhasabahController(db *gorm.DB) *MuhasabahController {
	return &MuhasabahController{DB: db}
}

// GET /api/u/muhasabah?page=&per_page=
func (ctl *MuhasabahController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 100)
	rows, total, err := muhasabahService.List(c.UserContext(), ctl.DB, userID, p)
	if err != nil {
		return helper.JsonDBError(c, err, "gagal ambil muhasabah")
	}
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "ok", rows, &pg)
}

// GET /api/u/muhasabah/by-date?date=
func (ctl *MuhasabahController) GetByDate(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	date, err := dbtime.QueryDate(c, "date", dbtime.Location(configs.AppTimezone))
	if err != nil {
		return err
	}
	row, err := muhasabahService.GetByDate(c.UserContext(), ctl.DB, userID, date)
	if err != nil {
		return helper.JsonDBError(c, err, "gagal ambil muhasabah")
	}
	if row == nil {
		return helper.JsonOK(c, "Belum ada muhasabah di tanggal ini", nil)
	}
	return helper.JsonOK(c, "ok", row)
}

// PUT /api/u/muhasabah
func (ctl *MuhasabahController) Upsert(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var req dto.UpsertMuhasabahRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	today := dbtime.Today(dbtime.Location(configs.AppTimezone))
	date := today
	if req.EntryDate != nil {
		if date, err = dbtime.ParseDate(*req.EntryDate); err != nil {
			return helper.JsonValidationError(c, map[string][]string{"entry_date": {err.Error()}})
		}
	}
	if date.After(today) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak bisa menulis muhasabah untuk tanggal yang akan datang")
	}

	m := muhasabahModel.MuhasabahEntryModel{
		MuhasabahUserID:    userID,
		MuhasabahEntryDate: date,
		MuhasabahContent:   req.Content,
		MuhasabahMood:      req.Mood,
		MuhasabahGratitude: req.Gratitude,
	}
	if err := muhasabahService.Upsert(c.UserContext(), ctl.DB, &m); err != nil {
		return helper.JsonDBError(c, err, "gagal simpan muhasabah")
	}
	metrics.MuhasabahSaved()
	return helper.JsonUpdated(c, "Muhasabah disimpan", m)
}

// DELETE /api/u/muhasabah/:id
func (ctl *MuhasabahController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	n, err := muhasabahService.DeleteOwned(c.UserContext(), ctl.DB, userID, id)
	if err != nil {
		return helper.JsonDBError(c, err, "gagal hapus muhasabah")
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Muhasabah tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Muhasabah dihapus", fiber.Map{"muhasabah_id": id})
}
