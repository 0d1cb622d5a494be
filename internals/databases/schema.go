package database

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	recordModel "ibadahku_backend/internals/features/ibadah/records/model"
	subscriptionModel "ibadahku_backend/internals/features/ibadah/subscriptions/model"
	typeModel "ibadahku_backend/internals/features/ibadah/types/model"
	muhasabahModel "ibadahku_backend/internals/features/muhasabah/model"
	ramadhanModel "ibadahku_backend/internals/features/ramadhan/model"
	settingModel "ibadahku_backend/internals/features/settings/model"
	supportModel "ibadahku_backend/internals/features/support/model"
	authModel "ibadahku_backend/internals/features/users/auth/model"
	userModel "ibadahku_backend/internals/features/users/user/model"
)

type tableDef struct {
	table   string
	model   any
	indexes []string
}

// urutan penting: tabel referensi dibuat dulu
var tableDefs = []tableDef{
	{table: "profiles", model: &userModel.ProfileModel{}},
	{table: "refresh_tokens", model: &authModel.RefreshTokenModel{}},
	{table: "token_blacklist", model: &authModel.TokenBlacklistModel{}},
	{table: "ibadah_types", model: &typeModel.IbadahTypeModel{}, indexes: []string{"uq_ibadah_type_code"}},
	{table: "user_ibadah", model: &subscriptionModel.UserIbadahModel{}, indexes: []string{"uq_user_ibadah_user_type"}},
	{table: "ibadah_records", model: &recordModel.IbadahRecordModel{}, indexes: []string{"uq_ibadah_record_user_type_date"}},
	{table: "muhasabah_entries", model: &muhasabahModel.MuhasabahEntryModel{}, indexes: []string{"uq_muhasabah_user_date"}},
	{table: "support_messages", model: &supportModel.SupportMessageModel{}},
	{table: "ramadhan_content", model: &ramadhanModel.RamadhanContentModel{}, indexes: []string{"uq_ramadhan_content_key"}},
	{table: "admin_settings", model: &settingModel.AdminSettingModel{}},
}

// EnsureTables memeriksa setiap tabel domain; kalau relasinya hilang,
// definisi tabel (beserta unique index) dibuat ulang lewat AutoMigrate model tsb.
// Tabel yang sudah ada tidak diubah, kecuali unique index yang hilang.
func EnsureTables(db *gorm.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	tx := db.WithContext(ctx)

	for _, def := range tableDefs {
		if !HasTable(tx, def.table) {
			log.Warn().Str("table", def.table).Msg("[SCHEMA] Tabel tidak ditemukan, membuat ulang definisi tabel")
			if err := tx.AutoMigrate(def.model); err != nil {
				return err
			}
			continue
		}
		for _, idx := range def.indexes {
			if tx.Migrator().HasIndex(def.model, idx) {
				continue
			}
			log.Warn().Str("table", def.table).Str("index", idx).Msg("[SCHEMA] Unique index hilang, membuat ulang")
			if err := tx.Migrator().CreateIndex(def.model, idx); err != nil {
				return err
			}
		}
	}
	return nil
}

// HasTable cek keberadaan relasi di schema aktif.
func HasTable(db *gorm.DB, table string) bool {
	if db == nil || table == "" {
		return false
	}
	var exists bool
	if err := db.Raw(`SELECT to_regclass((SELECT current_schema()) || '.' || ?) IS NOT NULL`, table).
		Scan(&exists).Error; err != nil {
		return false
	}
	return exists
}

// HasColumn dipakai query fallback saat kolom opsional belum ada.
func HasColumn(db *gorm.DB, table, column string) bool {
	if db == nil || table == "" || column == "" {
		return false
	}
	var exists bool
	if err := db.Raw(`
		SELECT EXISTS (
		  SELECT 1 FROM information_schema.columns
		  WHERE table_schema = current_schema()
		    AND table_name = ?
		    AND column_name = ?
		)`, table, column).Scan(&exists).Error; err != nil {
		return false
	}
	return exists
}
