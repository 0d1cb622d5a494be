package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	database "ibadahku_backend/internals/databases"
	muhasabahModel "ibadahku_backend/internals/features/muhasabah/model"
	helper "ibadahku_backend/internals/helpers"
)

const (
	tableName  = "muhasabah_entries"
	moodColumn = "muhasabah_mood"
)

var moodColumnSeen atomic.Bool

// HasMoodColumn; hasil positif di-cache, negatif dicek ulang (kolom bisa ditambah belakangan).
func HasMoodColumn(db *gorm.DB) bool {
	if moodColumnSeen.Load() {
		return true
	}
	if database.HasColumn(db, tableName, moodColumn) {
		moodColumnSeen.Store(true)
		return true
	}
	return false
}

func selectColumns(withMood bool) []string {
	cols := []string{
		"muhasabah_id", "muhasabah_user_id", "muhasabah_entry_date",
		"muhasabah_content", "muhasabah_gratitude",
		"muhasabah_created_at", "muhasabah_updated_at",
	}
	if withMood {
		cols = append(cols, moodColumn)
	}
	return cols
}

// List muhasabah user, terbaru dulu.
func List(ctx context.Context, db *gorm.DB, userID uuid.UUID, p helper.Paging) ([]muhasabahModel.MuhasabahEntryModel, int64, error) {
	q := db.WithContext(ctx).Model(&muhasabahModel.MuhasabahEntryModel{}).
		Where("muhasabah_user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	rows := []muhasabahModel.MuhasabahEntryModel{}
	find := func(withMood bool) error {
		return q.Session(&gorm.Session{}).
			Select(selectColumns(withMood)).
			Order("muhasabah_entry_date DESC").
			Limit(p.Limit).Offset(p.Offset).
			Find(&rows).Error
	}
	err := find(HasMoodColumn(db))
	if helper.IsUndefinedColumn(err) {
		// kolom mood hilang setelah cache terisi
		moodColumnSeen.Store(false)
		err = find(false)
	}
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// GetByDate nil kalau belum ada catatan di tanggal itu.
func GetByDate(ctx context.Context, db *gorm.DB, userID uuid.UUID, date time.Time) (*muhasabahModel.MuhasabahEntryModel, error) {
	var rows []muhasabahModel.MuhasabahEntryModel
	find := func(withMood bool) error {
		return db.WithContext(ctx).
			Select(selectColumns(withMood)).
			Where("muhasabah_user_id = ? AND muhasabah_entry_date = ?", userID, date.Format("2006-01-02")).
			Limit(1).
			Find(&rows).Error
	}
	err := find(HasMoodColumn(db))
	if helper.IsUndefinedColumn(err) {
		moodColumnSeen.Store(false)
		err = find(false)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// Upsert satu muhasabah per (user, tanggal).
func Upsert(ctx context.Context, db *gorm.DB, m *muhasabahModel.MuhasabahEntryModel) error {
	withMood := HasMoodColumn(db)
	updates := map[string]any{
		"muhasabah_content":    m.MuhasabahContent,
		"muhasabah_gratitude":  m.MuhasabahGratitude,
		"muhasabah_updated_at": gorm.Expr("NOW()"),
	}
	tx := db.WithContext(ctx)
	if withMood {
		updates[moodColumn] = m.MuhasabahMood
	} else {
		tx = tx.Omit(moodColumn)
		m.MuhasabahMood = nil
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "muhasabah_user_id"}, {Name: "muhasabah_entry_date"}},
		DoUpdates: clause.Assignments(updates),
	}).Create(m).Error
}

func DeleteOwned(ctx context.Context, db *gorm.DB, userID, id uuid.UUID) (int64, error) {
	res := db.WithContext(ctx).
		Where("muhasabah_id = ? AND muhasabah_user_id = ?", id, userID).
		Delete(&muhasabahModel.MuhasabahEntryModel{})
	return res.RowsAffected, res.Error
}

func ExistsOnDate(ctx context.Context, db *gorm.DB, userID uuid.UUID, date time.Time) (bool, error) {
	var exists bool
	err := db.WithContext(ctx).Raw(`
		SELECT EXISTS (
		  SELECT 1 FROM muhasabah_entries
		  WHERE muhasabah_user_id = ? AND muhasabah_entry_date = ?
		)`, userID, date.Format("2006-01-02")).Scan(&exists).Error
	return exists, err
}

// CountInRange jumlah muhasabah user from..to (inklusif).
func CountInRange(ctx context.Context, db *gorm.DB, userID uuid.UUID, from, to time.Time) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&muhasabahModel.MuhasabahEntryModel{}).
		Where("muhasabah_user_id = ? AND muhasabah_entry_date BETWEEN ? AND ?",
			userID, from.Format("2006-01-02"), to.Format("2006-01-02")).
		Count(&n).Error
	return n, err
}

// CountOnDate semua user (statistik admin).
func CountOnDate(ctx context.Context, db *gorm.DB, date time.Time) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&muhasabahModel.MuhasabahEntryModel{}).
		Where("muhasabah_entry_date = ?", date.Format("2006-01-02")).
		Count(&n).Error
	return n, err
}
