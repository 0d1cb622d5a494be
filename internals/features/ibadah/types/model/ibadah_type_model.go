// file: internals/features/ibadah/types/model/ibadah_type_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type IbadahTypeModel struct {
	IbadahTypeID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:ibadah_type_id" json:"ibadah_type_id"`
	IbadahTypeCode        string    `gorm:"type:varchar(80);not null;column:ibadah_type_code;uniqueIndex:uq_ibadah_type_code" json:"ibadah_type_code"`
	IbadahTypeName        string    `gorm:"type:varchar(120);not null;column:ibadah_type_name" json:"ibadah_type_name"`
	IbadahTypeDescription *string   `gorm:"type:text;column:ibadah_type_description" json:"ibadah_type_description,omitempty"`

	// checklist | count
	IbadahTypeTrackingType string `gorm:"type:varchar(16);not null;default:'checklist';column:ibadah_type_tracking_type" json:"ibadah_type_tracking_type"`
	// daily | weekly | monthly
	IbadahTypeFrequency string `gorm:"type:varchar(16);not null;default:'daily';column:ibadah_type_frequency" json:"ibadah_type_frequency"`
	// always | date_range | specific_dates
	IbadahTypeScheduleType  string         `gorm:"type:varchar(20);not null;default:'always';column:ibadah_type_schedule_type" json:"ibadah_type_schedule_type"`
	IbadahTypeStartDate     *time.Time     `gorm:"type:date;column:ibadah_type_start_date" json:"ibadah_type_start_date,omitempty"`
	IbadahTypeEndDate       *time.Time     `gorm:"type:date;column:ibadah_type_end_date" json:"ibadah_type_end_date,omitempty"`
	IbadahTypeSpecificDates pq.StringArray `gorm:"type:text[];column:ibadah_type_specific_dates" json:"ibadah_type_specific_dates"`
	IbadahTypeDaysOfWeek    pq.Int64Array  `gorm:"type:bigint[];column:ibadah_type_days_of_week" json:"ibadah_type_days_of_week"` // 0=Minggu..6=Sabtu

	IbadahTypeDefaultTarget  int     `gorm:"not null;default:1;column:ibadah_type_default_target" json:"ibadah_type_default_target"`
	IbadahTypeUnit           *string `gorm:"type:varchar(30);column:ibadah_type_unit" json:"ibadah_type_unit,omitempty"`
	IbadahTypeIcon           *string `gorm:"type:varchar(60);column:ibadah_type_icon" json:"ibadah_type_icon,omitempty"`
	IbadahTypeSortOrder      int     `gorm:"not null;default:0;column:ibadah_type_sort_order" json:"ibadah_type_sort_order"`
	IbadahTypeIsDefault      bool    `gorm:"not null;default:false;column:ibadah_type_is_default" json:"ibadah_type_is_default"`
	IbadahTypeIsRamadhanOnly bool    `gorm:"not null;default:false;column:ibadah_type_is_ramadhan_only" json:"ibadah_type_is_ramadhan_only"`
	IbadahTypeIsActive       bool    `gorm:"not null;default:true;column:ibadah_type_is_active" json:"ibadah_type_is_active"`

	IbadahTypeCreatedAt time.Time      `gorm:"column:ibadah_type_created_at;autoCreateTime" json:"ibadah_type_created_at"`
	IbadahTypeUpdatedAt time.Time      `gorm:"column:ibadah_type_updated_at;autoUpdateTime" json:"ibadah_type_updated_at"`
	IbadahTypeDeletedAt gorm.DeletedAt `gorm:"column:ibadah_type_deleted_at;index" json:"-"`
}

func (IbadahTypeModel) TableName() string { return "ibadah_types" }
