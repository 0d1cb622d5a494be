package model

import (
	"time"

	"github.com/google/uuid"
)

// MuhasabahEntryModel = catatan refleksi harian; satu per user per tanggal
type MuhasabahEntryModel struct {
	MuhasabahID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:muhasabah_id" json:"muhasabah_id"`
	MuhasabahUserID    uuid.UUID `gorm:"type:uuid;not null;column:muhasabah_user_id;uniqueIndex:uq_muhasabah_user_date,priority:1" json:"muhasabah_user_id"`
	MuhasabahEntryDate time.Time `gorm:"type:date;not null;column:muhasabah_entry_date;uniqueIndex:uq_muhasabah_user_date,priority:2" json:"muhasabah_entry_date"`
	MuhasabahContent   string    `gorm:"type:text;not null;column:muhasabah_content" json:"muhasabah_content"`
	MuhasabahMood      *int      `gorm:"type:smallint;column:muhasabah_mood" json:"muhasabah_mood,omitempty"` // 1..5
	MuhasabahGratitude *string   `gorm:"type:text;column:muhasabah_gratitude" json:"muhasabah_gratitude,omitempty"`

	MuhasabahCreatedAt time.Time `gorm:"column:muhasabah_created_at;autoCreateTime" json:"muhasabah_created_at"`
	MuhasabahUpdatedAt time.Time `gorm:"column:muhasabah_updated_at;autoUpdateTime" json:"muhasabah_updated_at"`
}

func (MuhasabahEntryModel) TableName() string { return "muhasabah_entries" }
