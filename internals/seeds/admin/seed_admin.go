package admin

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"ibadahku_backend/internals/configs"
	authDto "ibadahku_backend/internals/features/users/auth/dto"
	authHelper "ibadahku_backend/internals/features/users/auth/helper"
	userModel "ibadahku_backend/internals/features/users/user/model"
)

type AdminSeed struct {
	Email    string
	Password string
	FullName string
}

// AdminSeedFromEnv SEED_ADMIN_EMAIL + SEED_ADMIN_PASSWORD (nama opsional).
func AdminSeedFromEnv() (AdminSeed, bool) {
	s := AdminSeed{
		Email:    authDto.NormalizeEmail(configs.GetEnv("SEED_ADMIN_EMAIL")),
		Password: configs.GetEnv("SEED_ADMIN_PASSWORD"),
		FullName: strings.TrimSpace(configs.GetEnv("SEED_ADMIN_NAME", "Administrator")),
	}
	return s, s.Email != "" && s.Password != ""
}

// SeedAdmin buat akun admin pertama; email yang sudah terdaftar dilewati.
func SeedAdmin(ctx context.Context, db *gorm.DB, s AdminSeed) (bool, error) {
	var existing userModel.ProfileModel
	err := db.WithContext(ctx).Select("id").
		Where("LOWER(email) = ?", s.Email).
		First(&existing).Error
	if err == nil {
		log.Info().Str("email", s.Email).Msg("[SEED] Admin sudah ada, dilewati")
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	hashed, err := authHelper.HashPassword(s.Password)
	if err != nil {
		return false, err
	}
	p := userModel.ProfileModel{
		Email:    s.Email,
		FullName: s.FullName,
		Password: &hashed,
		IsAdmin:  true,
		IsActive: true,
	}
	if err := db.WithContext(ctx).Create(&p).Error; err != nil {
		return false, err
	}
	log.Info().Str("email", s.Email).Msg("[SEED] Admin dibuat")
	return true, nil
}
