// internals/features/ibadah/records/service/record_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ibadahku_backend/internals/configs"
	progressService "ibadahku_backend/internals/features/ibadah/progress/service"
	recordModel "ibadahku_backend/internals/features/ibadah/records/model"
	"ibadahku_backend/internals/helpers/dbtime"
)

// RecordView catatan + metadata jenis + target langganan user.
type RecordView struct {
	IbadahRecordID           uuid.UUID `gorm:"column:ibadah_record_id" json:"ibadah_record_id"`
	IbadahRecordIbadahTypeID uuid.UUID `gorm:"column:ibadah_record_ibadah_type_id" json:"ibadah_record_ibadah_type_id"`
	IbadahRecordDate         time.Time `gorm:"column:ibadah_record_date" json:"-"`
	IbadahRecordIsCompleted  bool      `gorm:"column:ibadah_record_is_completed" json:"ibadah_record_is_completed"`
	IbadahRecordCountValue   int       `gorm:"column:ibadah_record_count_value" json:"ibadah_record_count_value"`
	IbadahRecordNotes        *string   `gorm:"column:ibadah_record_notes" json:"ibadah_record_notes,omitempty"`

	IbadahTypeName         string  `gorm:"column:ibadah_type_name" json:"ibadah_type_name"`
	IbadahTypeTrackingType string  `gorm:"column:ibadah_type_tracking_type" json:"ibadah_type_tracking_type"`
	IbadahTypeUnit         *string `gorm:"column:ibadah_type_unit" json:"ibadah_type_unit,omitempty"`
	IbadahTypeIcon         *string `gorm:"column:ibadah_type_icon" json:"ibadah_type_icon,omitempty"`
	TargetCount            int     `gorm:"column:target_count" json:"target_count"`

	Date   string `gorm:"-" json:"ibadah_record_date"`
	IsDone bool   `gorm:"-" json:"is_done"`
}

const viewSelect = `
	SELECT r.ibadah_record_id, r.ibadah_record_ibadah_type_id, r.ibadah_record_date,
	       r.ibadah_record_is_completed, r.ibadah_record_count_value, r.ibadah_record_notes,
	       t.ibadah_type_name, t.ibadah_type_tracking_type, t.ibadah_type_unit, t.ibadah_type_icon,
	       COALESCE(ui.user_ibadah_target_count, t.ibadah_type_default_target, 1) AS target_count
	FROM ibadah_records r
	JOIN ibadah_types t ON t.ibadah_type_id = r.ibadah_record_ibadah_type_id
	LEFT JOIN user_ibadah ui ON ui.user_ibadah_user_id = r.ibadah_record_user_id
	     AND ui.user_ibadah_ibadah_type_id = r.ibadah_record_ibadah_type_id
	WHERE r.ibadah_record_user_id = ?
	  AND r.ibadah_record_date BETWEEN ? AND ?
	ORDER BY r.ibadah_record_date DESC, t.ibadah_type_sort_order ASC, t.ibadah_type_name ASC`

// ListRange catatan user dari..sampai (inklusif), is_done sudah diturunkan.
func ListRange(ctx context.Context, db *gorm.DB, userID uuid.UUID, from, to time.Time) ([]RecordView, error) {
	var rows []RecordView
	if err := db.WithContext(ctx).
		Raw(viewSelect, userID, from.Format("2006-01-02"), to.Format("2006-01-02")).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	ResolveDone(rows, dbtime.Today(dbtime.Location(configs.AppTimezone)))
	return rows, nil
}

// ResolveDone isi Date & IsDone. Catatan sebelum today pakai status tersimpan
// (target saat dicatat); today ke atas diturunkan dari target langganan sekarang.
func ResolveDone(rows []RecordView, today time.Time) {
	for i := range rows {
		rows[i].Date = rows[i].IbadahRecordDate.Format("2006-01-02")
		if dbtime.DateOf(rows[i].IbadahRecordDate, nil).Before(today) {
			rows[i].IsDone = rows[i].IbadahRecordIsCompleted
			continue
		}
		rows[i].IsDone = progressService.IsCompleted(rows[i].subscription(), rows[i].observation())
	}
}

func ListByDate(ctx context.Context, db *gorm.DB, userID uuid.UUID, date time.Time) ([]RecordView, error) {
	return ListRange(ctx, db, userID, date, date)
}

func (v *RecordView) subscription() progressService.Subscription {
	return progressService.Subscription{
		IbadahTypeID: v.IbadahRecordIbadahTypeID,
		TrackingType: v.IbadahTypeTrackingType,
		Target:       v.TargetCount,
	}
}

func (v *RecordView) observation() *progressService.Observation {
	return &progressService.Observation{
		IbadahTypeID: v.IbadahRecordIbadahTypeID,
		IsCompleted:  v.IbadahRecordIsCompleted,
		CountValue:   v.IbadahRecordCountValue,
	}
}

// Observations konversi view -> input kalkulasi progress.
func Observations(rows []RecordView) []progressService.Observation {
	out := make([]progressService.Observation, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].observation())
	}
	return out
}

// Upsert satu catatan; konflik (user, jenis, tanggal) -> update di tempat.
func Upsert(ctx context.Context, db *gorm.DB, m *recordModel.IbadahRecordModel) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "ibadah_record_user_id"},
			{Name: "ibadah_record_ibadah_type_id"},
			{Name: "ibadah_record_date"},
		},
		DoUpdates: clause.Assignments(map[string]any{
			"ibadah_record_is_completed": m.IbadahRecordIsCompleted,
			"ibadah_record_count_value":  m.IbadahRecordCountValue,
			"ibadah_record_notes":        m.IbadahRecordNotes,
			"ibadah_record_updated_at":   gorm.Expr("NOW()"),
		}),
	}).Create(m).Error
}

func DeleteOwned(ctx context.Context, db *gorm.DB, userID, id uuid.UUID) (int64, error) {
	res := db.WithContext(ctx).
		Where("ibadah_record_id = ? AND ibadah_record_user_id = ?", id, userID).
		Delete(&recordModel.IbadahRecordModel{})
	return res.RowsAffected, res.Error
}

// CountOnDate jumlah catatan semua user pada tanggal (statistik admin).
func CountOnDate(ctx context.Context, db *gorm.DB, date time.Time) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&recordModel.IbadahRecordModel{}).
		Where("ibadah_record_date = ?", date.Format("2006-01-02")).
		Count(&n).Error
	return n, err
}
