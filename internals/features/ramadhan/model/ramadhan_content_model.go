package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type RamadhanContentModel struct {
	RamadhanContentID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:ramadhan_content_id" json:"ramadhan_content_id"`
	RamadhanContentKey         string         `gorm:"type:varchar(100);not null;column:ramadhan_content_key;uniqueIndex:uq_ramadhan_content_key" json:"ramadhan_content_key"`
	RamadhanContentTitle       string         `gorm:"type:varchar(200);not null;column:ramadhan_content_title" json:"ramadhan_content_title"`
	RamadhanContentBody        string         `gorm:"type:text;not null;column:ramadhan_content_body" json:"ramadhan_content_body"`
	RamadhanContentType        string         `gorm:"type:varchar(20);not null;default:'tips';column:ramadhan_content_type" json:"ramadhan_content_type"`
	RamadhanContentDayNumber   *int           `gorm:"column:ramadhan_content_day_number" json:"ramadhan_content_day_number,omitempty"` // 1..30
	RamadhanContentMetadata    datatypes.JSON `gorm:"type:jsonb;column:ramadhan_content_metadata" json:"ramadhan_content_metadata,omitempty"`
	RamadhanContentIsPublished bool           `gorm:"not null;default:false;column:ramadhan_content_is_published" json:"ramadhan_content_is_published"`
	RamadhanContentSortOrder   int            `gorm:"not null;default:0;column:ramadhan_content_sort_order" json:"ramadhan_content_sort_order"`

	RamadhanContentCreatedAt time.Time `gorm:"column:ramadhan_content_created_at;autoCreateTime" json:"ramadhan_content_created_at"`
	RamadhanContentUpdatedAt time.Time `gorm:"column:ramadhan_content_updated_at;autoUpdateTime" json:"ramadhan_content_updated_at"`
}

func (RamadhanContentModel) TableName() string { return "ramadhan_content" }
