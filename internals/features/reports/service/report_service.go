package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	recordService "ibadahku_backend/internals/features/ibadah/records/service"
	muhasabahService "ibadahku_backend/internals/features/muhasabah/service"
)

// Report analytics + jumlah muhasabah di rentang yang sama.
type Report struct {
	Analytics
	MuhasabahCount int64 `json:"muhasabah_count"`
}

// LoadRows catatan user from..to dengan status selesai yang sudah diturunkan.
func LoadRows(ctx context.Context, db *gorm.DB, userID uuid.UUID, from, to time.Time) ([]RecordRow, error) {
	views, err := recordService.ListRange(ctx, db, userID, from, to)
	if err != nil {
		return nil, err
	}
	rows := make([]RecordRow, 0, len(views))
	for _, v := range views {
		rows = append(rows, RecordRow{
			Date:           v.IbadahRecordDate,
			IbadahTypeID:   v.IbadahRecordIbadahTypeID,
			IbadahTypeName: v.IbadahTypeName,
			Completed:      v.IsDone,
		})
	}
	return rows, nil
}

func ForUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, from, to time.Time) (*Report, error) {
	rows, err := LoadRows(ctx, db, userID, from, to)
	if err != nil {
		return nil, err
	}
	n, err := muhasabahService.CountInRange(ctx, db, userID, from, to)
	if err != nil {
		return nil, err
	}
	return &Report{Analytics: BuildAnalytics(rows, from, to), MuhasabahCount: n}, nil
}
