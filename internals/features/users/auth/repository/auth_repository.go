package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "ibadahku_backend/internals/features/users/auth/model"
	userModel "ibadahku_backend/internals/features/users/user/model"
)

/* ====================== PROFILE ====================== */

func FindProfileByEmail(ctx context.Context, db *gorm.DB, email string) (*userModel.ProfileModel, error) {
	var p userModel.ProfileModel
	if err := db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).Take(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func FindProfileByGoogleID(ctx context.Context, db *gorm.DB, googleID string) (*userModel.ProfileModel, error) {
	var p userModel.ProfileModel
	if err := db.WithContext(ctx).Where("google_id = ?", googleID).Take(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func FindProfileByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*userModel.ProfileModel, error) {
	var p userModel.ProfileModel
	if err := db.WithContext(ctx).Where("id = ?", id).Take(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func CreateProfile(ctx context.Context, db *gorm.DB, p *userModel.ProfileModel) error {
	return db.WithContext(ctx).Create(p).Error
}

func UpdatePassword(ctx context.Context, db *gorm.DB, userID uuid.UUID, hash string) error {
	return db.WithContext(ctx).Model(&userModel.ProfileModel{}).
		Where("id = ?", userID).
		Updates(map[string]any{"password": hash, "updated_at": time.Now()}).Error
}

func LinkGoogleID(ctx context.Context, db *gorm.DB, userID uuid.UUID, googleID string) error {
	return db.WithContext(ctx).Model(&userModel.ProfileModel{}).
		Where("id = ?", userID).
		Updates(map[string]any{"google_id": googleID, "updated_at": time.Now()}).Error
}

/* ====================== REFRESH TOKEN ====================== */

func CreateRefreshToken(ctx context.Context, db *gorm.DB, rt *authModel.RefreshTokenModel) error {
	return db.WithContext(ctx).Create(rt).Error
}

// FindActiveRefreshToken belum di-revoke dan belum expired.
func FindActiveRefreshToken(ctx context.Context, db *gorm.DB, hash []byte) (*authModel.RefreshTokenModel, error) {
	var rt authModel.RefreshTokenModel
	if err := db.WithContext(ctx).
		Where("token = ? AND revoked_at IS NULL AND expires_at > NOW()", hash).
		Take(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func RevokeRefreshTokenByID(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	res := db.WithContext(ctx).Model(&authModel.RefreshTokenModel{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", time.Now().UTC())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func RevokeRefreshTokenByHash(ctx context.Context, db *gorm.DB, hash []byte) error {
	return db.WithContext(ctx).Model(&authModel.RefreshTokenModel{}).
		Where("token = ? AND revoked_at IS NULL", hash).
		Update("revoked_at", time.Now().UTC()).Error
}

// PurgeRefreshTokens hapus token yang expired atau sudah di-revoke.
func PurgeRefreshTokens(ctx context.Context, db *gorm.DB) (int64, error) {
	res := db.WithContext(ctx).Exec(`DELETE FROM refresh_tokens WHERE expires_at <= NOW() OR revoked_at IS NOT NULL`)
	return res.RowsAffected, res.Error
}
