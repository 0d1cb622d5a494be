package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ibadahku_backend/internals/configs"
	"ibadahku_backend/internals/constants"
	progressService "ibadahku_backend/internals/features/ibadah/progress/service"
	"ibadahku_backend/internals/features/ibadah/records/dto"
	recordModel "ibadahku_backend/internals/features/ibadah/records/model"
	recordService "ibadahku_backend/internals/features/ibadah/records/service"
	subService "ibadahku_backend/internals/features/ibadah/subscriptions/service"
	typeService "ibadahku_backend/internals/features/ibadah/types/service"
	helper "ibadahku_backend/internals/helpers"
	"ibadahku_backend/internals/helpers/dbtime"
	"ibadahku_backend/internals/middlewares/metrics"
)

const (
	rangeDefaultDays = 7
	rangeMaxDays     = 366
)

type RecordController struct {
	DB *gorm.DB
}

func NewRecordController(db *gorm.DB) *RecordController {
	return &RecordController{DB: db}
}

// GET /api/u/records?date=YYYY-MM-DD
func (ctl *RecordController) ListByDate(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	date, err := dbtime.QueryDate(c, "date", dbtime.Location(configs.AppTimezone))
	if err != nil {
		return err
	}
	rows, err := recordService.ListByDate(c.UserContext(), ctl.DB, userID, date)
	if err != nil {
		return helper.JsonDBError(c, err, "gagal ambil catatan ibadah")
	}
	return helper.JsonList(c, "ok", rows, nil)
}

// GET /api/u/records/range?from=&to=
func (ctl *RecordController) ListRange(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	from, to, err := dbtime.QueryRange(c, dbtime.Location(configs.AppTimezone), rangeDefaultDays, rangeMaxDays)
	if err != nil {
		return err
	}
	rows, err := recordService.ListRange(c.UserContext(), ctl.DB, userID, from, to)
	if err != nil {
		return helper.JsonDBError(c, err, "gagal ambil catatan ibadah")
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		"from":    dbtime.DateKey(from),
		"to":      dbtime.DateKey(to),
		"records": rows,
	})
}

// PUT /api/u/records
func (ctl *RecordController) Upsert(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var req dto.UpsertRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	today := dbtime.Today(dbtime.Location(configs.AppTimezone))
	date := today
	if req.RecordDate != nil {
		if date, err = dbtime.ParseDate(*req.RecordDate); err != nil {
			return helper.JsonValidationError(c, map[string][]string{"record_date": {err.Error()}})
		}
	}
	if date.After(today) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak bisa mencatat ibadah untuk tanggal yang akan datang")
	}

	ctx := c.UserContext()
	sub, err := subService.FindActive(ctx, ctl.DB, userID, req.IbadahTypeID)
	if err != nil {
		return helper.JsonDBError(c, err, "gagal cek langganan")
	}
	if sub == nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Kamu belum menambahkan ibadah ini ke daftarmu")
	}
	t, err := typeService.GetByID(ctx, ctl.DB, req.IbadahTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Jenis ibadah tidak ditemukan")
		}
		return helper.JsonDBError(c, err, "gagal ambil jenis ibadah")
	}

	m := recordModel.IbadahRecordModel{
		IbadahRecordUserID:       userID,
		IbadahRecordIbadahTypeID: t.IbadahTypeID,
		IbadahRecordDate:         date,
		IbadahRecordNotes:        req.Notes,
	}
	switch t.IbadahTypeTrackingType {
	case constants.TrackingCount:
		if req.CountValue == nil {
			return helper.JsonValidationError(c, map[string][]string{"count_value": {"wajib diisi untuk ibadah hitungan"}})
		}
		m.IbadahRecordCountValue = *req.CountValue
	default:
		if req.IsCompleted == nil {
			return helper.JsonValidationError(c, map[string][]string{"is_completed": {"wajib diisi untuk ibadah checklist"}})
		}
		if *req.IsCompleted {
			m.IbadahRecordCountValue = 1
		}
	}
	m.IbadahRecordIsCompleted = progressService.IsCompleted(
		progressService.Subscription{
			IbadahTypeID: t.IbadahTypeID,
			TrackingType: t.IbadahTypeTrackingType,
			Target:       sub.UserIbadahTargetCount,
		},
		&progressService.Observation{
			IbadahTypeID: t.IbadahTypeID,
			IsCompleted:  req.IsCompleted != nil && *req.IsCompleted,
			CountValue:   m.IbadahRecordCountValue,
		},
	)

	if err := recordService.Upsert(ctx, ctl.DB, &m); err != nil {
		return helper.JsonDBError(c, err, "gagal simpan catatan ibadah")
	}
	metrics.RecordUpserted(t.IbadahTypeTrackingType)
	return helper.JsonUpdated(c, "Catatan ibadah disimpan", m)
}

// DELETE /api/u/records/:id
func (ctl *RecordController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	n, err := recordService.DeleteOwned(c.UserContext(), ctl.DB, userID, id)
	if err != nil {
		return helper.JsonDBError(c, err, "gagal hapus catatan")
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Catatan tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Catatan dihapus", fiber.Map{"ibadah_record_id": id})
}
