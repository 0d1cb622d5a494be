package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ibadahku_backend/internals/configs"
	"ibadahku_backend/internals/features/ibadah/types/dto"
	model "ibadahku_backend/internals/features/ibadah/types/model"
	typeService "ibadahku_backend/internals/features/ibadah/types/service"
	settingService "ibadahku_backend/internals/features/settings/service"
	helper "ibadahku_backend/internals/helpers"
	"ibadahku_backend/internals/helpers/dbtime"
)

const codeMaxLen = 80

type IbadahTypeController struct {
	DB *gorm.DB
}

func NewIbadahTypeController(db *gorm.DB) *IbadahTypeController {
	return &IbadahTypeController{DB: db}
}

/* =========================================================
   USER
   ========================================================= */

// GET /api/u/ibadah-types?date=YYYY-MM-DD
func (ctl *IbadahTypeController) ListForUser(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	ctx := c.UserContext()

	rows, err := typeService.ListActive(ctx, ctl.DB)
	if err != nil {
		return helper.JsonDBError(c, err, "gagal ambil jenis ibadah")
	}
	rows = typeService.FilterVisible(rows, settingService.IsRamadhanMode(ctx, ctl.DB))

	date := dbtime.Today(dbtime.Location(configs.AppTimezone))
	onlyScheduled := strings.TrimSpace(c.Query("date")) != ""
	if onlyScheduled {
		if date, err = dbtime.QueryDate(c, "date", nil); err != nil {
			return err
		}
		rows = typeService.FilterScheduled(rows, date)
	}

	var subscribed []uuid.UUID
	if err := ctl.DB.WithContext(ctx).
		Table("user_ibadah").
		Where("user_ibadah_user_id = ? AND user_ibadah_is_active = ?", userID, true).
		Pluck("user_ibadah_ibadah_type_id", &subscribed).Error; err != nil {
		return helper.JsonDBError(c, err, "gagal ambil langganan")
	}
	subSet := make(map[uuid.UUID]struct{}, len(subscribed))
	for _, id := range subscribed {
		subSet[id] = struct{}{}
	}

	out := make([]dto.IbadahTypeCatalogItem, 0, len(rows))
	for i := range rows {
		_, sub := subSet[rows[i].IbadahTypeID]
		out = append(out, dto.IbadahTypeCatalogItem{
			IbadahTypeModel:  &rows[i],
			IsScheduledToday: rows[i].IsScheduledOn(date),
			IsSubscribed:     sub,
		})
	}
	return helper.JsonList(c, "ok", out, nil)
}

/* =========================================================
   ADMIN
   ========================================================= */

// GET /api/a/ibadah-types?q=&include_inactive=true&page=&per_page=
func (ctl *IbadahTypeController) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.IbadahTypeModel{})
	if !c.QueryBool("include_inactive", false) {
		q = q.Where("ibadah_type_is_active = ?", true)
	}
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("(LOWER(ibadah_type_name) LIKE ? OR LOWER(ibadah_type_code) LIKE ?)", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "gagal hitung jenis ibadah")
	}
	var rows []model.IbadahTypeModel
	if err := q.Order("ibadah_type_sort_order ASC, ibadah_type_name ASC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "gagal ambil jenis ibadah")
	}

	p := helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage)
	return helper.JsonList(c, "ok", rows, &p)
}

// GET /api/a/ibadah-types/:id
func (ctl *IbadahTypeController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	m, err := typeService.GetByID(c.UserContext(), ctl.DB, id)
	if err != nil {
		return helper.JsonDBError(c, err, "gagal ambil jenis ibadah")
	}
	return helper.JsonOK(c, "ok", m)
}

// POST /api/a/ibadah-types
func (ctl *IbadahTypeController) Create(c *fiber.Ctx) error {
	var req dto.CreateIbadahTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	m := req.ToModel()
	if errs := dto.ValidateSchedule(m); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	// kode eksplisit harus unik (409); kode turunan nama diberi suffix otomatis
	if req.IbadahTypeCode != nil {
		m.IbadahTypeCode = helper.Slugify(*req.IbadahTypeCode, codeMaxLen)
	} else {
		code, err := helper.EnsureUniqueSlugCI(c.UserContext(), ctl.DB, "ibadah_types", "ibadah_type_code",
			helper.Slugify(m.IbadahTypeName, codeMaxLen), nil, codeMaxLen)
		if err != nil {
			return helper.JsonDBError(c, err, "gagal generate kode")
		}
		m.IbadahTypeCode = code
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Kode jenis ibadah sudah dipakai")
		}
		return helper.JsonDBError(c, err, "gagal membuat jenis ibadah")
	}
	return helper.JsonCreated(c, "Jenis ibadah dibuat", m)
}

// PATCH /api/a/ibadah-types/:id
func (ctl *IbadahTypeController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.PatchIbadahTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}

	m, err := typeService.GetByID(c.UserContext(), ctl.DB, id)
	if err != nil {
		return helper.JsonDBError(c, err, "gagal ambil jenis ibadah")
	}
	if errs := req.Apply(m); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	if errs := dto.ValidateSchedule(m); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	if req.IbadahTypeCode.Set() {
		m.IbadahTypeCode = helper.Slugify(m.IbadahTypeCode, codeMaxLen)
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Kode jenis ibadah sudah dipakai")
		}
		return helper.JsonDBError(c, err, "gagal update jenis ibadah")
	}
	return helper.JsonUpdated(c, "Jenis ibadah diperbarui", m)
}

// DELETE /api/a/ibadah-types/:id (soft delete)
func (ctl *IbadahTypeController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).
		Where("ibadah_type_id = ?", id).
		Delete(&model.IbadahTypeModel{})
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "gagal hapus jenis ibadah")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Jenis ibadah tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Jenis ibadah dihapus", fiber.Map{"ibadah_type_id": id})
}
