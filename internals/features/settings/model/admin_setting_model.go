package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AdminSettingModel key-value konfigurasi aplikasi yang bisa diubah admin
type AdminSettingModel struct {
	AdminSettingKey         string         `gorm:"type:varchar(100);primaryKey;column:admin_setting_key" json:"admin_setting_key"`
	AdminSettingValue       datatypes.JSON `gorm:"type:jsonb;not null;column:admin_setting_value" json:"admin_setting_value"`
	AdminSettingDescription *string        `gorm:"type:text;column:admin_setting_description" json:"admin_setting_description,omitempty"`
	AdminSettingUpdatedBy   *uuid.UUID     `gorm:"type:uuid;column:admin_setting_updated_by" json:"admin_setting_updated_by,omitempty"`
	AdminSettingUpdatedAt   time.Time      `gorm:"column:admin_setting_updated_at;autoUpdateTime" json:"admin_setting_updated_at"`
}

func (AdminSettingModel) TableName() string { return "admin_settings" }
