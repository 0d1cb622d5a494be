package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "ibadahku_backend/internals/features/ibadah/types/model"
)

// ListActive jenis ibadah aktif (belum terhapus), urut sort_order lalu nama.
func ListActive(ctx context.Context, db *gorm.DB) ([]model.IbadahTypeModel, error) {
	var rows []model.IbadahTypeModel
	err := db.WithContext(ctx).
		Where("ibadah_type_is_active = ?", true).
		Order("ibadah_type_sort_order ASC, ibadah_type_name ASC").
		Find(&rows).Error
	return rows, err
}

// FilterVisible buang yang tidak tampil (mis. khusus Ramadhan di luar mode Ramadhan).
func FilterVisible(rows []model.IbadahTypeModel, ramadhanMode bool) []model.IbadahTypeModel {
	out := make([]model.IbadahTypeModel, 0, len(rows))
	for i := range rows {
		if rows[i].IsVisible(ramadhanMode) {
			out = append(out, rows[i])
		}
	}
	return out
}

// FilterScheduled sisakan yang terjadwal pada date.
func FilterScheduled(rows []model.IbadahTypeModel, date time.Time) []model.IbadahTypeModel {
	out := make([]model.IbadahTypeModel, 0, len(rows))
	for i := range rows {
		if rows[i].IsScheduledOn(date) {
			out = append(out, rows[i])
		}
	}
	return out
}

func GetByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.IbadahTypeModel, error) {
	var m model.IbadahTypeModel
	if err := db.WithContext(ctx).
		Where("ibadah_type_id = ?", id).
		Take(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// ListDefaults jenis default untuk langganan awal user baru.
func ListDefaults(ctx context.Context, db *gorm.DB) ([]model.IbadahTypeModel, error) {
	var rows []model.IbadahTypeModel
	err := db.WithContext(ctx).
		Where("ibadah_type_is_default = ? AND ibadah_type_is_active = ?", true, true).
		Order("ibadah_type_sort_order ASC").
		Find(&rows).Error
	return rows, err
}
