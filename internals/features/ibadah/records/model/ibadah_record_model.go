package model

import (
	"time"

	"github.com/google/uuid"
)

// IbadahRecordModel = catatan ibadah harian; unik per (user, jenis, tanggal)
type IbadahRecordModel struct {
	IbadahRecordID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:ibadah_record_id" json:"ibadah_record_id"`
	IbadahRecordUserID       uuid.UUID `gorm:"type:uuid;not null;column:ibadah_record_user_id;uniqueIndex:uq_ibadah_record_user_type_date,priority:1;index:idx_ibadah_record_user_date,priority:1" json:"ibadah_record_user_id"`
	IbadahRecordIbadahTypeID uuid.UUID `gorm:"type:uuid;not null;column:ibadah_record_ibadah_type_id;uniqueIndex:uq_ibadah_record_user_type_date,priority:2" json:"ibadah_record_ibadah_type_id"`
	IbadahRecordDate         time.Time `gorm:"type:date;not null;column:ibadah_record_date;uniqueIndex:uq_ibadah_record_user_type_date,priority:3;index:idx_ibadah_record_user_date,priority:2" json:"ibadah_record_date"`
	IbadahRecordIsCompleted  bool      `gorm:"not null;default:false;column:ibadah_record_is_completed" json:"ibadah_record_is_completed"`
	IbadahRecordCountValue   int       `gorm:"not null;default:0;column:ibadah_record_count_value" json:"ibadah_record_count_value"`
	IbadahRecordNotes        *string   `gorm:"type:text;column:ibadah_record_notes" json:"ibadah_record_notes,omitempty"`

	IbadahRecordCreatedAt time.Time `gorm:"column:ibadah_record_created_at;autoCreateTime" json:"ibadah_record_created_at"`
	IbadahRecordUpdatedAt time.Time `gorm:"column:ibadah_record_updated_at;autoUpdateTime" json:"ibadah_record_updated_at"`
}

func (IbadahRecordModel) TableName() string { return "ibadah_records" }
