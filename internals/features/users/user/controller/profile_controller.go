package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ibadahku_backend/internals/features/users/user/dto"
	userService "ibadahku_backend/internals/features/users/user/service"
	helper "ibadahku_backend/internals/helpers"
)

type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

// GET /api/u/profile
func (pc *ProfileController) Get(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	p, err := userService.GetByID(c.UserContext(), pc.DB, userID)
	if err != nil {
		return helper.JsonDBError(c, err, "gagal ambil profil")
	}
	return helper.JsonOK(c, "ok", p)
}

// PATCH /api/u/profile
func (pc *ProfileController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	p, err := userService.GetByID(c.UserContext(), pc.DB, userID)
	if err != nil {
		return helper.JsonDBError(c, err, "gagal ambil profil")
	}
	if err := userService.Update(c.UserContext(), pc.DB, p, map[string]any{"full_name": req.FullName}); err != nil {
		return helper.JsonDBError(c, err, "gagal update profil")
	}
	p.FullName = req.FullName
	return helper.JsonUpdated(c, "Profil diperbarui", p)
}
