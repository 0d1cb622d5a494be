package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestSummarizeByDate(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	rows := []RecordRow{
		{Date: day("2026-03-01"), IbadahTypeID: a, Completed: true},
		{Date: day("2026-03-01"), IbadahTypeID: b, Completed: false},
		{Date: day("2026-03-02"), IbadahTypeID: a, Completed: true},
	}

	days := SummarizeByDate(rows)
	require.Len(t, days, 2)
	assert.Equal(t, "2026-03-02", days[0].Date)
	assert.Equal(t, DaySummary{Date: "2026-03-01", Completed: 1, Total: 2, Percentage: 50}, days[1])
	assert.True(t, days[0].IsComplete())
	assert.False(t, days[1].IsComplete())
}

func TestRankByType_RateThenName(t *testing.T) {
	subuh, dzuhur, tilawah := uuid.New(), uuid.New(), uuid.New()
	rows := []RecordRow{
		{IbadahTypeID: tilawah, IbadahTypeName: "Tilawah", Completed: true},
		{IbadahTypeID: tilawah, IbadahTypeName: "Tilawah", Completed: false},
		{IbadahTypeID: subuh, IbadahTypeName: "Subuh", Completed: true},
		{IbadahTypeID: dzuhur, IbadahTypeName: "Dzuhur", Completed: true},
	}

	stats := RankByType(rows)
	require.Len(t, stats, 3)
	assert.Equal(t, "Dzuhur", stats[0].IbadahTypeName)
	assert.Equal(t, "Subuh", stats[1].IbadahTypeName)
	assert.Equal(t, "Tilawah", stats[2].IbadahTypeName)
	assert.Equal(t, 50, stats[2].Rate)
}

func TestCurrentStreak(t *testing.T) {
	cases := []struct {
		name string
		days []DaySummary
		want int
	}{
		{"empty", nil, 0},
		{"three complete days", []DaySummary{
			{Date: "2026-03-03", Completed: 2, Total: 2},
			{Date: "2026-03-02", Completed: 1, Total: 1},
			{Date: "2026-03-01", Completed: 3, Total: 3},
		}, 3},
		{"latest day incomplete", []DaySummary{
			{Date: "2026-03-03", Completed: 1, Total: 2},
			{Date: "2026-03-02", Completed: 1, Total: 1},
		}, 0},
		{"gap stops the walk", []DaySummary{
			{Date: "2026-03-05", Completed: 1, Total: 1},
			{Date: "2026-03-04", Completed: 1, Total: 1},
			{Date: "2026-03-02", Completed: 1, Total: 1},
		}, 2},
		{"unsorted input", []DaySummary{
			{Date: "2026-03-01", Completed: 1, Total: 1},
			{Date: "2026-03-02", Completed: 1, Total: 1},
		}, 2},
		{"day without records is not complete", []DaySummary{
			{Date: "2026-03-02", Completed: 0, Total: 0},
		}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CurrentStreak(tc.days))
		})
	}
}

func TestLongestStreak(t *testing.T) {
	days := []DaySummary{
		{Date: "2026-03-10", Completed: 1, Total: 1},
		{Date: "2026-03-09", Completed: 0, Total: 1},
		{Date: "2026-03-08", Completed: 1, Total: 1},
		{Date: "2026-03-07", Completed: 1, Total: 1},
		{Date: "2026-03-06", Completed: 1, Total: 1},
		{Date: "2026-03-04", Completed: 1, Total: 1},
	}
	assert.Equal(t, 3, LongestStreak(days))
	assert.Equal(t, 1, CurrentStreak(days))
}

func TestBuildAnalytics(t *testing.T) {
	a := uuid.New()
	rows := []RecordRow{
		{Date: day("2026-03-01"), IbadahTypeID: a, IbadahTypeName: "Subuh", Completed: true},
		{Date: day("2026-03-02"), IbadahTypeID: a, IbadahTypeName: "Subuh", Completed: true},
		{Date: day("2026-03-03"), IbadahTypeID: a, IbadahTypeName: "Subuh", Completed: false},
	}

	res := BuildAnalytics(rows, day("2026-03-01"), day("2026-03-07"))
	assert.Equal(t, 7, res.DaysInRange)
	assert.Equal(t, 3, res.ActiveDays)
	assert.Equal(t, 2, res.PerfectDays)
	assert.Equal(t, 3, res.TotalRecords)
	assert.Equal(t, 2, res.CompletedRecords)
	assert.Equal(t, 67, res.CompletionRate)
	assert.Equal(t, 0, res.CurrentStreak)
	assert.Equal(t, 2, res.LongestStreak)

	again := BuildAnalytics(rows, day("2026-03-01"), day("2026-03-07"))
	assert.Equal(t, res, again)
}
