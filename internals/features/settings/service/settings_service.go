// internals/features/settings/service/settings_service.go
package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ibadahku_backend/internals/configs"
	"ibadahku_backend/internals/constants"
	settingModel "ibadahku_backend/internals/features/settings/model"
	helper "ibadahku_backend/internals/helpers"
)

const qryTimeout = 2 * time.Second

// GetValue nilai mentah JSON; found=false kalau key belum ada.
func GetValue(ctx context.Context, db *gorm.DB, key string) (datatypes.JSON, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, qryTimeout)
	defer cancel()

	var row struct {
		Value []byte `gorm:"column:admin_setting_value"`
	}
	res := db.WithContext(ctx).Raw(
		`SELECT admin_setting_value FROM admin_settings WHERE admin_setting_key = ? LIMIT 1`, key,
	).Scan(&row)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected == 0 || len(row.Value) == 0 {
		return nil, false, nil
	}
	return datatypes.JSON(row.Value), true, nil
}

// GetBool baca setting boolean. Format yang diterima: true, "true", 1, {"enabled": true}.
// Key tidak ada / tabel belum ada / format aneh -> def.
func GetBool(ctx context.Context, db *gorm.DB, key string, def bool) bool {
	raw, found, err := GetValue(ctx, db, key)
	if err != nil {
		if helper.IsUndefinedTable(err) {
			log.Warn().Str("key", key).Msg("[SETTINGS] tabel admin_settings belum ada, pakai default")
		} else {
			log.Error().Err(err).Str("key", key).Msg("[SETTINGS] gagal baca setting")
		}
		return def
	}
	if !found {
		return def
	}
	if b, ok := ParseBool(raw); ok {
		return b
	}
	return def
}

func ParseBool(raw []byte) (bool, bool) {
	var v any
	if err := sonic.Unmarshal(raw, &v); err != nil {
		return false, false
	}
	switch t := v.(type) {
	case bool:
		return t, true
	case float64:
		return t != 0, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		if err != nil {
			return false, false
		}
		return b, true
	case map[string]any:
		if e, ok := t["enabled"].(bool); ok {
			return e, true
		}
	}
	return false, false
}

// IsRamadhanMode flag fitur Ramadhan; fallback env RAMADHAN_MODE_DEFAULT.
func IsRamadhanMode(ctx context.Context, db *gorm.DB) bool {
	return GetBool(ctx, db, constants.SettingRamadhanMode, configs.GetEnvBool("RAMADHAN_MODE_DEFAULT", false))
}

func List(ctx context.Context, db *gorm.DB, keys []string) ([]settingModel.AdminSettingModel, error) {
	var rows []settingModel.AdminSettingModel
	q := db.WithContext(ctx).Model(&settingModel.AdminSettingModel{})
	if len(keys) > 0 {
		q = q.Where("admin_setting_key IN ?", keys)
	}
	if err := q.Order("admin_setting_key ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func Get(ctx context.Context, db *gorm.DB, key string) (*settingModel.AdminSettingModel, error) {
	var row settingModel.AdminSettingModel
	if err := db.WithContext(ctx).
		Where("admin_setting_key = ?", key).
		Take(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Upsert by key; description hanya ditimpa kalau dikirim.
func Upsert(ctx context.Context, db *gorm.DB, key string, value datatypes.JSON, description *string, by uuid.UUID) (*settingModel.AdminSettingModel, error) {
	row := settingModel.AdminSettingModel{
		AdminSettingKey:         key,
		AdminSettingValue:       value,
		AdminSettingDescription: description,
		AdminSettingUpdatedBy:   &by,
		AdminSettingUpdatedAt:   time.Now(),
	}
	cols := []string{"admin_setting_value", "admin_setting_updated_by", "admin_setting_updated_at"}
	if description != nil {
		cols = append(cols, "admin_setting_description")
	}
	if err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "admin_setting_key"}},
		DoUpdates: clause.AssignmentColumns(cols),
	}).Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// EnsureDefault insert kalau key belum ada (dipakai seeder).
func EnsureDefault(ctx context.Context, db *gorm.DB, key string, value datatypes.JSON, description string) error {
	desc := description
	return db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&settingModel.AdminSettingModel{
		AdminSettingKey:         key,
		AdminSettingValue:       value,
		AdminSettingDescription: &desc,
		AdminSettingUpdatedAt:   time.Now(),
	}).Error
}
