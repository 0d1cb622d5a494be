package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"ibadahku_backend/internals/constants"
)

func countView(date time.Time, count, target int, stored bool) RecordView {
	return RecordView{
		IbadahRecordID:           uuid.New(),
		IbadahRecordIbadahTypeID: uuid.New(),
		IbadahRecordDate:         date,
		IbadahRecordIsCompleted:  stored,
		IbadahRecordCountValue:   count,
		IbadahTypeTrackingType:   constants.TrackingCount,
		TargetCount:              target,
	}
}

func TestResolveDone_PastRowKeepsStoredStatus(t *testing.T) {
	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	// dicatat 5/5 kemarin, target lalu dinaikkan ke 10
	done := countView(yesterday, 5, 10, true)
	// dicatat 3/5 kemarin, target lalu diturunkan ke 3
	notDone := countView(yesterday, 3, 3, false)
	rows := []RecordView{done, notDone}

	ResolveDone(rows, today)

	assert.Equal(t, "2025-03-09", rows[0].Date)
	assert.True(t, rows[0].IsDone)
	assert.False(t, rows[1].IsDone)
}

func TestResolveDone_TodayUsesCurrentTarget(t *testing.T) {
	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	rows := []RecordView{
		countView(today, 5, 10, true),
		countView(today, 3, 3, false),
	}

	ResolveDone(rows, today)

	assert.False(t, rows[0].IsDone)
	assert.True(t, rows[1].IsDone)
}

func TestResolveDone_ChecklistFollowsFlag(t *testing.T) {
	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	rows := []RecordView{{
		IbadahRecordIbadahTypeID: uuid.New(),
		IbadahRecordDate:         today,
		IbadahRecordIsCompleted:  true,
		IbadahTypeTrackingType:   constants.TrackingChecklist,
		TargetCount:              1,
	}}

	ResolveDone(rows, today)
	assert.True(t, rows[0].IsDone)
}
