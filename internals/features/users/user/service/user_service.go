package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "ibadahku_backend/internals/features/users/user/model"
	helper "ibadahku_backend/internals/helpers"
)

type ListFilter struct {
	Query    string
	IsActive *bool
	IsAdmin  *bool
}

// List profil dengan pencarian nama/email.
func List(ctx context.Context, db *gorm.DB, f ListFilter, p helper.Paging) ([]userModel.ProfileModel, int64, error) {
	q := db.WithContext(ctx).Model(&userModel.ProfileModel{})
	if s := strings.TrimSpace(f.Query); s != "" {
		like := "%" + s + "%"
		q = q.Where("full_name ILIKE ? OR email ILIKE ?", like, like)
	}
	if f.IsActive != nil {
		q = q.Where("is_active = ?", *f.IsActive)
	}
	if f.IsAdmin != nil {
		q = q.Where("is_admin = ?", *f.IsAdmin)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	rows := []userModel.ProfileModel{}
	err := q.Order("created_at DESC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error
	return rows, total, err
}

func GetByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*userModel.ProfileModel, error) {
	var p userModel.ProfileModel
	if err := db.WithContext(ctx).Where("id = ?", id).Take(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func Update(ctx context.Context, db *gorm.DB, p *userModel.ProfileModel, updates map[string]any) error {
	updates["updated_at"] = time.Now()
	return db.WithContext(ctx).Model(p).Updates(updates).Error
}

// userOwnedTables data milik user yang ikut dihapus bersama profil.
var userOwnedTables = []struct{ table, column string }{
	{"ibadah_records", "ibadah_record_user_id"},
	{"user_ibadah", "user_ibadah_user_id"},
	{"muhasabah_entries", "muhasabah_user_id"},
	{"support_messages", "support_message_user_id"},
	{"refresh_tokens", "user_id"},
}

// Delete hapus profil beserta semua datanya; false kalau profil tidak ada.
func Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (bool, error) {
	found := false
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, t := range userOwnedTables {
			if err := tx.Exec("DELETE FROM "+t.table+" WHERE "+t.column+" = ?", id).Error; err != nil {
				return err
			}
		}
		res := tx.Exec(`DELETE FROM profiles WHERE id = ?`, id)
		if res.Error != nil {
			return res.Error
		}
		found = res.RowsAffected > 0
		return nil
	})
	return found, err
}

/* ===================== STATS ===================== */

type Counts struct {
	Total  int64 `gorm:"column:total"`
	Active int64 `gorm:"column:active"`
	Admins int64 `gorm:"column:admins"`
}

func CountAll(ctx context.Context, db *gorm.DB) (Counts, error) {
	var c Counts
	err := db.WithContext(ctx).Raw(`
		SELECT COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE is_active) AS active,
		       COUNT(*) FILTER (WHERE is_admin) AS admins
		FROM profiles`).Scan(&c).Error
	return c, err
}

// CountCreatedBetween user baru di [from, to).
func CountCreatedBetween(ctx context.Context, db *gorm.DB, from, to time.Time) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&userModel.ProfileModel{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&n).Error
	return n, err
}
