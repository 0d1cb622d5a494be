package dto

import (
	"strings"

	"github.com/google/uuid"

	userModel "ibadahku_backend/internals/features/users/user/model"
)

type RegisterRequest struct {
	FullName string `json:"full_name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func (r *RegisterRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = NormalizeEmail(r.Email)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = NormalizeEmail(r.Email)
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}

func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// UserResponse bentuk user di response login / me.
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	IsAdmin     bool      `json:"is_admin"`
	Role        string    `json:"role"`
	HasPassword bool      `json:"has_password"`
	HasGoogle   bool      `json:"has_google"`
}

func ToUserResponse(p *userModel.ProfileModel, role string) UserResponse {
	return UserResponse{
		ID:          p.ID,
		Email:       p.Email,
		FullName:    p.FullName,
		IsAdmin:     p.IsAdmin,
		Role:        role,
		HasPassword: p.HasPassword(),
		HasGoogle:   p.GoogleID != nil && *p.GoogleID != "",
	}
}
