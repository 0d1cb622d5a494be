package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ibadahku_backend/internals/constants"
	"ibadahku_backend/internals/features/ibadah/subscriptions/dto"
	subModel "ibadahku_backend/internals/features/ibadah/subscriptions/model"
	subService "ibadahku_backend/internals/features/ibadah/subscriptions/service"
	typeService "ibadahku_backend/internals/features/ibadah/types/service"
	helper "ibadahku_backend/internals/helpers"
)

type SubscriptionController struct {
	DB *gorm.DB
}

func NewSubscriptionController(db *gorm.DB) *SubscriptionController {
	return &SubscriptionController{DB: db}
}

// GET /api/u/my-ibadah?active=true|false
func (ctl *SubscriptionController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var active *bool
	switch c.Query("active") {
	case "true":
		v := true
		active = &v
	case "false":
		v := false
		active = &v
	}
	rows, err := subService.ListViews(c.UserContext(), ctl.DB, userID, active)
	if err != nil {
		return helper.JsonDBError(c, err, "gagal ambil langganan ibadah")
	}
	return helper.JsonList(c, "ok", rows, nil)
}

// POST /api/u/my-ibadah
func (ctl *SubscriptionController) Subscribe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var req dto.SubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	t, err := typeService.GetByID(c.UserContext(), ctl.DB, req.IbadahTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Jenis ibadah tidak ditemukan")
		}
		return helper.JsonDBError(c, err, "gagal ambil jenis ibadah")
	}
	if !t.IbadahTypeIsActive {
		return helper.JsonError(c, fiber.StatusBadRequest, "Jenis ibadah tidak aktif")
	}

	target := t.EffectiveTarget()
	if req.TargetCount != nil && t.IbadahTypeTrackingType == constants.TrackingCount {
		target = *req.TargetCount
	}

	row, err := subService.Subscribe(c.UserContext(), ctl.DB, userID, t.IbadahTypeID, target)
	if err != nil {
		return helper.JsonDBError(c, err, "gagal berlangganan ibadah")
	}
	return helper.JsonCreated(c, "Ibadah ditambahkan", row)
}

// PATCH /api/u/my-ibadah/:id
func (ctl *SubscriptionController) Patch(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.PatchSubscriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	if req.Empty() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	m, err := subService.GetOwned(c.UserContext(), ctl.DB, userID, id)
	if err != nil {
		return helper.JsonDBError(c, err, "gagal ambil langganan")
	}
	updates := map[string]any{}
	if req.TargetCount != nil {
		t, err := typeService.GetByID(c.UserContext(), ctl.DB, m.UserIbadahIbadahTypeID)
		if err != nil {
			return helper.JsonDBError(c, err, "gagal ambil jenis ibadah")
		}
		if t.IbadahTypeTrackingType == constants.TrackingChecklist && *req.TargetCount != 1 {
			return helper.JsonValidationError(c, map[string][]string{
				"target_count": {"ibadah checklist selalu bertarget 1"},
			})
		}
		updates["user_ibadah_target_count"] = *req.TargetCount
	}
	if req.IsActive != nil {
		updates["user_ibadah_is_active"] = *req.IsActive
	}

	if err := ctl.DB.WithContext(c.UserContext()).Model(m).Updates(updates).Error; err != nil {
		return helper.JsonDBError(c, err, "gagal update langganan")
	}
	return helper.JsonUpdated(c, "Langganan diperbarui", m)
}

// DELETE /api/u/my-ibadah/:id
func (ctl *SubscriptionController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).
		Where("user_ibadah_id = ? AND user_ibadah_user_id = ?", id, userID).
		Delete(&subModel.UserIbadahModel{})
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "gagal hapus langganan")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Langganan tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Langganan dihapus", fiber.Map{"user_ibadah_id": id})
}
