package model

import (
	"time"

	"github.com/google/uuid"
)

// UserIbadahModel = langganan user ke satu jenis ibadah (tabel user_ibadah)
type UserIbadahModel struct {
	UserIbadahID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_ibadah_id" json:"user_ibadah_id"`
	UserIbadahUserID       uuid.UUID `gorm:"type:uuid;not null;column:user_ibadah_user_id;uniqueIndex:uq_user_ibadah_user_type,priority:1" json:"user_ibadah_user_id"`
	UserIbadahIbadahTypeID uuid.UUID `gorm:"type:uuid;not null;column:user_ibadah_ibadah_type_id;uniqueIndex:uq_user_ibadah_user_type,priority:2;index:idx_user_ibadah_type" json:"user_ibadah_ibadah_type_id"`
	UserIbadahTargetCount  int       `gorm:"not null;default:1;column:user_ibadah_target_count" json:"user_ibadah_target_count"`
	UserIbadahIsActive     bool      `gorm:"not null;default:true;column:user_ibadah_is_active" json:"user_ibadah_is_active"`

	UserIbadahCreatedAt time.Time `gorm:"column:user_ibadah_created_at;autoCreateTime" json:"user_ibadah_created_at"`
	UserIbadahUpdatedAt time.Time `gorm:"column:user_ibadah_updated_at;autoUpdateTime" json:"user_ibadah_updated_at"`
}

func (UserIbadahModel) TableName() string { return "user_ibadah" }
