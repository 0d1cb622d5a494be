package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ibadahku_backend/internals/features/users/user/dto"
	userService "ibadahku_backend/internals/features/users/user/service"
	helper "ibadahku_backend/internals/helpers"
)

type UserAdminController struct {
	DB *gorm.DB
}

func NewUserAdminController(db *gorm.DB) *UserAdminController {
	return &UserAdminController{DB: db}
}

// GET /api/a/users?q=&is_active=&is_admin=&page=&per_page=
func (uc *UserAdminController) List(c *fiber.Ctx) error {
	f := userService.ListFilter{Query: c.Query("q")}
	if v := c.Query("is_active"); v != "" {
		b := c.QueryBool("is_active")
		f.IsActive = &b
	}
	if v := c.Query("is_admin"); v != "" {
		b := c.QueryBool("is_admin")
		f.IsAdmin = &b
	}
	p := helper.ResolvePaging(c, 20, 100)
	rows, total, err := userService.List(c.UserContext(), uc.DB, f, p)
	if err != nil {
		return helper.JsonDBError(c, err, "gagal ambil daftar user")
	}
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "ok", rows, &pg)
}

// GET /api/a/users/:id
func (uc *UserAdminController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	p, err := userService.GetByID(c.UserContext(), uc.DB, id)
	if err != nil {
		return helper.JsonDBError(c, err, "gagal ambil user")
	}
	return helper.JsonOK(c, "ok", p)
}

// PATCH /api/a/users/:id
func (uc *UserAdminController) Patch(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.AdminPatchUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	if req.Empty() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}
	if err := req.GuardSelf(actorID, id); err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	p, err := userService.GetByID(c.UserContext(), uc.DB, id)
	if err != nil {
		return helper.JsonDBError(c, err, "gagal ambil user")
	}
	if err := userService.Update(c.UserContext(), uc.DB, p, req.Updates()); err != nil {
		return helper.JsonDBError(c, err, "gagal update user")
	}
	if p, err = userService.GetByID(c.UserContext(), uc.DB, id); err != nil {
		return helper.JsonDBError(c, err, "gagal ambil user")
	}
	return helper.JsonUpdated(c, "User diperbarui", p)
}

// DELETE /api/a/users/:id
func (uc *UserAdminController) Delete(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if actorID == id {
		return helper.JsonError(c, fiber.StatusForbidden, "Tidak bisa menghapus akun sendiri")
	}
	found, err := userService.Delete(c.UserContext(), uc.DB, id)
	if err != nil {
		return helper.JsonDBError(c, err, "gagal hapus user")
	}
	if !found {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	return helper.JsonDeleted(c, "User dihapus", fiber.Map{"id": id})
}
