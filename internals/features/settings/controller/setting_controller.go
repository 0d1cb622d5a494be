package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"ibadahku_backend/internals/constants"
	"ibadahku_backend/internals/features/settings/dto"
	settingService "ibadahku_backend/internals/features/settings/service"
	helper "ibadahku_backend/internals/helpers"
)

type SettingController struct {
	DB *gorm.DB
}

func NewSettingController(db *gorm.DB) *SettingController {
	return &SettingController{DB: db}
}

// GET /api/public/settings/app
func (ctl *SettingController) PublicApp(c *fiber.Ctx) error {
	rows, err := settingService.List(c.UserContext(), ctl.DB, constants.PublicSettingKeys)
	if err != nil && !helper.IsUndefinedTable(err) {
		return helper.JsonDBError(c, err, "gagal ambil setting publik")
	}
	return helper.JsonOK(c, "ok", dto.PublicSettingsResponse{
		RamadhanMode: settingService.IsRamadhanMode(c.UserContext(), ctl.DB),
		Settings:     dto.ToPublicMap(rows),
	})
}

// GET /api/a/settings
func (ctl *SettingController) List(c *fiber.Ctx) error {
	rows, err := settingService.List(c.UserContext(), ctl.DB, nil)
	if err != nil {
		return helper.JsonDBError(c, err, "gagal ambil settings")
	}
	return helper.JsonList(c, "ok", rows, nil)
}

// GET /api/a/settings/:key
func (ctl *SettingController) Get(c *fiber.Ctx) error {
	key := strings.TrimSpace(c.Params("key"))
	row, err := settingService.Get(c.UserContext(), ctl.DB, key)
	if err != nil {
		return helper.JsonDBError(c, err, "gagal ambil setting")
	}
	return helper.JsonOK(c, "ok", row)
}

// PUT /api/a/settings/:key
func (ctl *SettingController) Upsert(c *fiber.Ctx) error {
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	key := strings.TrimSpace(c.Params("key"))
	if !helper.IsSlug(strings.ReplaceAll(key, "_", "-")) || len(key) > 100 {
		return helper.JsonError(c, fiber.StatusBadRequest, "setting key tidak valid")
	}

	var req dto.UpsertSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	if !req.ValidJSON() {
		return helper.JsonValidationError(c, map[string][]string{
			"admin_setting_value": {"harus JSON yang valid"},
		})
	}

	row, err := settingService.Upsert(c.UserContext(), ctl.DB, key, datatypes.JSON(req.AdminSettingValue), req.AdminSettingDescription, adminID)
	if err != nil {
		return helper.JsonDBError(c, err, "gagal simpan setting")
	}
	return helper.JsonUpdated(c, "Setting disimpan", row)
}
