package dto

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

type UpdateProfileRequest struct {
	FullName string `json:"full_name" validate:"required,min=3,max=100"`
}

func (r *UpdateProfileRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
}

type AdminPatchUserRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,min=3,max=100"`
	IsActive *bool   `json:"is_active"`
	IsAdmin  *bool   `json:"is_admin"`
}

func (r *AdminPatchUserRequest) Normalize() {
	if r.FullName != nil {
		v := strings.TrimSpace(*r.FullName)
		r.FullName = &v
	}
}

func (r *AdminPatchUserRequest) Empty() bool {
	return r.FullName == nil && r.IsActive == nil && r.IsAdmin == nil
}

var (
	ErrSelfDemote     = errors.New("tidak bisa mencabut hak admin akun sendiri")
	ErrSelfDeactivate = errors.New("tidak bisa menonaktifkan akun sendiri")
)

// GuardSelf admin tidak boleh mencabut admin / menonaktifkan dirinya sendiri.
func (r *AdminPatchUserRequest) GuardSelf(actorID, targetID uuid.UUID) error {
	if actorID != targetID {
		return nil
	}
	if r.IsAdmin != nil && !*r.IsAdmin {
		return ErrSelfDemote
	}
	if r.IsActive != nil && !*r.IsActive {
		return ErrSelfDeactivate
	}
	return nil
}

// Updates map kolom untuk GORM Updates.
func (r *AdminPatchUserRequest) Updates() map[string]any {
	out := map[string]any{}
	if r.FullName != nil {
		out["full_name"] = *r.FullName
	}
	if r.IsActive != nil {
		out["is_active"] = *r.IsActive
	}
	if r.IsAdmin != nil {
		out["is_admin"] = *r.IsAdmin
	}
	return out
}
