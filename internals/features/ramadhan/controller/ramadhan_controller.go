package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ibadahku_backend/internals/features/ramadhan/dto"
	model "ibadahku_backend/internals/features/ramadhan/model"
	ramadhanService "ibadahku_backend/internals/features/ramadhan/service"
	settingService "ibadahku_backend/internals/features/settings/service"
	helper "ibadahku_backend/internals/helpers"
)

const keyMaxLen = 100

type RamadhanController struct {
	DB *gorm.DB
}

func NewRamadhanController(db *gorm.DB) *RamadhanController {
	return &RamadhanController{DB: db}
}

// GET /api/public/ramadhan?type=
func (ctl *RamadhanController) PublicList(c *fiber.Ctx) error {
	ctx := c.UserContext()
	if !settingService.IsRamadhanMode(ctx, ctl.DB) {
		return helper.JsonOK(c, "Mode Ramadhan tidak aktif", dto.PublicRamadhanResponse{
			RamadhanMode: false,
			Items:        []model.RamadhanContentModel{},
		})
	}
	contentType, err := typeQuery(c)
	if err != nil {
		return err
	}
	rows, err := ramadhanService.ListPublished(ctx, ctl.DB, contentType)
	if err != nil {
		return helper.JsonDBError(c, err, "gagal ambil konten Ramadhan")
	}
	return helper.JsonOK(c, "ok", dto.PublicRamadhanResponse{RamadhanMode: true, Items: rows})
}

// GET /api/a/ramadhan?q=&type=
func (ctl *RamadhanController) AdminList(c *fiber.Ctx) error {
	contentType, err := typeQuery(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 100)
	rows, total, err := ramadhanService.AdminList(c.UserContext(), ctl.DB, c.Query("q"), contentType, p)
	if err != nil {
		return helper.JsonDBError(c, err, "gagal ambil konten Ramadhan")
	}
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "ok", rows, &pg)
}

// GET /api/a/ramadhan/:id
func (ctl *RamadhanController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	m, err := ramadhanService.GetByID(c.UserContext(), ctl.DB, id)
	if err != nil {
		return helper.JsonDBError(c, err, "gagal ambil konten Ramadhan")
	}
	return helper.JsonOK(c, "ok", m)
}

// POST /api/a/ramadhan
func (ctl *RamadhanController) Create(c *fiber.Ctx) error {
	var req dto.CreateRamadhanContentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	if !dto.ValidMetadata(req.RamadhanContentMetadata) {
		return helper.JsonValidationError(c, map[string][]string{"ramadhan_content_metadata": {"harus JSON valid"}})
	}

	m := req.ToModel()
	if req.RamadhanContentKey != nil {
		m.RamadhanContentKey = helper.Slugify(*req.RamadhanContentKey, keyMaxLen)
	} else {
		key, err := helper.EnsureUniqueSlugCI(c.UserContext(), ctl.DB, "ramadhan_content", "ramadhan_content_key",
			helper.Slugify(m.RamadhanContentTitle, keyMaxLen), nil, keyMaxLen)
		if err != nil {
			return helper.JsonDBError(c, err, "gagal generate key")
		}
		m.RamadhanContentKey = key
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Key konten sudah dipakai")
		}
		return helper.JsonDBError(c, err, "gagal membuat konten Ramadhan")
	}
	return helper.JsonCreated(c, "Konten Ramadhan dibuat", m)
}

// PATCH /api/a/ramadhan/:id
func (ctl *RamadhanController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.PatchRamadhanContentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}

	m, err := ramadhanService.GetByID(c.UserContext(), ctl.DB, id)
	if err != nil {
		return helper.JsonDBError(c, err, "gagal ambil konten Ramadhan")
	}
	if errs := req.Apply(m); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	if req.RamadhanContentKey.Set() {
		m.RamadhanContentKey = helper.Slugify(m.RamadhanContentKey, keyMaxLen)
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Key konten sudah dipakai")
		}
		return helper.JsonDBError(c, err, "gagal update konten Ramadhan")
	}
	return helper.JsonUpdated(c, "Konten Ramadhan diperbarui", m)
}

// DELETE /api/a/ramadhan/:id
func (ctl *RamadhanController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).
		Where("ramadhan_content_id = ?", id).
		Delete(&model.RamadhanContentModel{})
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "gagal hapus konten Ramadhan")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Konten tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Konten Ramadhan dihapus", fiber.Map{"ramadhan_content_id": id})
}

func typeQuery(c *fiber.Ctx) (string, error) {
	t := strings.ToLower(strings.TrimSpace(c.Query("type")))
	if t != "" && !dto.ValidType(t) {
		return "", fiber.NewError(fiber.StatusBadRequest, "type harus salah satu: tips dua schedule article")
	}
	return t, nil
}
