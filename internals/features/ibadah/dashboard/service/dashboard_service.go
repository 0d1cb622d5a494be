package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	progressService "ibadahku_backend/internals/features/ibadah/progress/service"
	recordService "ibadahku_backend/internals/features/ibadah/records/service"
	subModel "ibadahku_backend/internals/features/ibadah/subscriptions/model"
	subService "ibadahku_backend/internals/features/ibadah/subscriptions/service"
	typeModel "ibadahku_backend/internals/features/ibadah/types/model"
	muhasabahService "ibadahku_backend/internals/features/muhasabah/service"
	reportService "ibadahku_backend/internals/features/reports/service"
)

// streakLookbackDays jendela catatan yang dibaca untuk streak berjalan.
const streakLookbackDays = 365

type Item struct {
	UserIbadahID   uuid.UUID  `json:"user_ibadah_id"`
	IbadahTypeID   uuid.UUID  `json:"ibadah_type_id"`
	IbadahTypeCode string     `json:"ibadah_type_code"`
	IbadahTypeName string     `json:"ibadah_type_name"`
	TrackingType   string     `json:"tracking_type"`
	Unit           *string    `json:"unit,omitempty"`
	Icon           *string    `json:"icon,omitempty"`
	TargetCount    int        `json:"target_count"`
	RecordID       *uuid.UUID `json:"ibadah_record_id,omitempty"`
	CountValue     int        `json:"count_value"`
	Notes          *string    `json:"notes,omitempty"`
	IsDone         bool       `json:"is_done"`

	sortOrder int
}

type Dashboard struct {
	Date             string                   `json:"date"`
	RamadhanMode     bool                     `json:"ramadhan_mode"`
	Progress         progressService.Progress `json:"progress"`
	Items            []Item                   `json:"items"`
	MuhasabahWritten bool                     `json:"muhasabah_written"`
	CurrentStreak    int                      `json:"current_streak"`
}

// BuildDashboard ringkasan satu hari: ibadah terjadwal + progress + muhasabah + streak.
func BuildDashboard(ctx context.Context, db *gorm.DB, userID uuid.UUID, date time.Time, ramadhanMode bool) (*Dashboard, error) {
	subs, types, err := subService.ActiveWithTypes(ctx, db, userID)
	if err != nil {
		return nil, err
	}
	records, err := recordService.ListByDate(ctx, db, userID, date)
	if err != nil {
		return nil, err
	}
	items, progress := Assemble(subs, types, records, date, ramadhanMode)

	written, err := muhasabahService.ExistsOnDate(ctx, db, userID, date)
	if err != nil {
		return nil, err
	}
	history, err := reportService.LoadRows(ctx, db, userID, date.AddDate(0, 0, -(streakLookbackDays-1)), date)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Date:             date.Format("2006-01-02"),
		RamadhanMode:     ramadhanMode,
		Progress:         progress,
		Items:            items,
		MuhasabahWritten: written,
		CurrentStreak:    reportService.CurrentStreak(reportService.SummarizeByDate(TrackedRows(history, subs, types, ramadhanMode))),
	}, nil
}

// TrackedRows sisakan catatan jenis yang masih diikuti user dan tampil di mode sekarang.
func TrackedRows(
	rows []reportService.RecordRow,
	subs []subModel.UserIbadahModel,
	types map[uuid.UUID]typeModel.IbadahTypeModel,
	ramadhanMode bool,
) []reportService.RecordRow {
	tracked := make(map[uuid.UUID]struct{}, len(subs))
	for _, s := range subs {
		if t, ok := types[s.UserIbadahIbadahTypeID]; ok && t.IsVisible(ramadhanMode) {
			tracked[t.IbadahTypeID] = struct{}{}
		}
	}
	out := make([]reportService.RecordRow, 0, len(rows))
	for _, r := range rows {
		if _, ok := tracked[r.IbadahTypeID]; ok {
			out = append(out, r)
		}
	}
	return out
}

// Assemble gabungkan langganan aktif (yang tampil & terjadwal) dengan catatan hari itu.
func Assemble(
	subs []subModel.UserIbadahModel,
	types map[uuid.UUID]typeModel.IbadahTypeModel,
	records []recordService.RecordView,
	date time.Time,
	ramadhanMode bool,
) ([]Item, progressService.Progress) {
	byType := make(map[uuid.UUID]*recordService.RecordView, len(records))
	for i := range records {
		byType[records[i].IbadahRecordIbadahTypeID] = &records[i]
	}

	items := make([]Item, 0, len(subs))
	progSubs := make([]progressService.Subscription, 0, len(subs))
	for _, s := range subs {
		t, ok := types[s.UserIbadahIbadahTypeID]
		if !ok || !t.IsVisible(ramadhanMode) || !t.IsScheduledOn(date) {
			continue
		}
		ps := progressService.Subscription{
			IbadahTypeID: t.IbadahTypeID,
			TrackingType: t.IbadahTypeTrackingType,
			Target:       s.UserIbadahTargetCount,
		}
		progSubs = append(progSubs, ps)

		it := Item{
			UserIbadahID:   s.UserIbadahID,
			IbadahTypeID:   t.IbadahTypeID,
			IbadahTypeCode: t.IbadahTypeCode,
			IbadahTypeName: t.IbadahTypeName,
			TrackingType:   t.IbadahTypeTrackingType,
			Unit:           t.IbadahTypeUnit,
			Icon:           t.IbadahTypeIcon,
			TargetCount:    s.UserIbadahTargetCount,
			sortOrder:      t.IbadahTypeSortOrder,
		}
		if r, ok := byType[t.IbadahTypeID]; ok {
			id := r.IbadahRecordID
			it.RecordID = &id
			it.CountValue = r.IbadahRecordCountValue
			it.Notes = r.IbadahRecordNotes
			it.IsDone = progressService.IsCompleted(ps, &progressService.Observation{
				IbadahTypeID: r.IbadahRecordIbadahTypeID,
				IsCompleted:  r.IbadahRecordIsCompleted,
				CountValue:   r.IbadahRecordCountValue,
			})
		}
		items = append(items, it)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].sortOrder != items[j].sortOrder {
			return items[i].sortOrder < items[j].sortOrder
		}
		return items[i].IbadahTypeName < items[j].IbadahTypeName
	})
	return items, progressService.ComputeProgress(progSubs, recordService.Observations(records))
}
