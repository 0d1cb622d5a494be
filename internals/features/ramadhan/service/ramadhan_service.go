package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "ibadahku_backend/internals/features/ramadhan/model"
	helper "ibadahku_backend/internals/helpers"
)

// ListPublished konten terbit; contentType kosong = semua jenis.
func ListPublished(ctx context.Context, db *gorm.DB, contentType string) ([]model.RamadhanContentModel, error) {
	q := db.WithContext(ctx).Where("ramadhan_content_is_published = ?", true)
	if contentType != "" {
		q = q.Where("ramadhan_content_type = ?", contentType)
	}
	rows := []model.RamadhanContentModel{}
	err := q.Order("ramadhan_content_day_number ASC NULLS LAST, ramadhan_content_sort_order ASC, ramadhan_content_title ASC").
		Find(&rows).Error
	return rows, err
}

// AdminList semua konten; q cari di judul / key.
func AdminList(ctx context.Context, db *gorm.DB, search, contentType string, p helper.Paging) ([]model.RamadhanContentModel, int64, error) {
	q := db.WithContext(ctx).Model(&model.RamadhanContentModel{})
	if s := strings.TrimSpace(search); s != "" {
		like := "%" + s + "%"
		q = q.Where("ramadhan_content_title ILIKE ? OR ramadhan_content_key ILIKE ?", like, like)
	}
	if contentType != "" {
		q = q.Where("ramadhan_content_type = ?", contentType)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	rows := []model.RamadhanContentModel{}
	err := q.Order("ramadhan_content_sort_order ASC, ramadhan_content_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error
	return rows, total, err
}

func GetByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.RamadhanContentModel, error) {
	var m model.RamadhanContentModel
	if err := db.WithContext(ctx).Where("ramadhan_content_id = ?", id).Take(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
