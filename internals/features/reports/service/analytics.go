// internals/features/reports/service/analytics.go
package service

import (
	"sort"
	"time"

	"github.com/google/uuid"

	progressService "ibadahku_backend/internals/features/ibadah/progress/service"
)

const dateLayout = "2006-01-02"

// RecordRow satu catatan ibadah yang sudah diturunkan status selesainya.
type RecordRow struct {
	Date           time.Time
	IbadahTypeID   uuid.UUID
	IbadahTypeName string
	Completed      bool
}

type DaySummary struct {
	Date       string `json:"date"`
	Completed  int    `json:"completed"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
}

// IsComplete: ada catatan dan semuanya selesai.
func (d DaySummary) IsComplete() bool {
	return d.Total > 0 && d.Completed == d.Total
}

type TypeStat struct {
	IbadahTypeID   uuid.UUID `json:"ibadah_type_id"`
	IbadahTypeName string    `json:"ibadah_type_name"`
	Completed      int       `json:"completed"`
	Total          int       `json:"total"`
	Rate           int       `json:"rate"`
}

type Analytics struct {
	From             string       `json:"from"`
	To               string       `json:"to"`
	DaysInRange      int          `json:"days_in_range"`
	ActiveDays       int          `json:"active_days"`
	PerfectDays      int          `json:"perfect_days"`
	TotalRecords     int          `json:"total_records"`
	CompletedRecords int          `json:"completed_records"`
	CompletionRate   int          `json:"completion_rate"`
	CurrentStreak    int          `json:"current_streak"`
	LongestStreak    int          `json:"longest_streak"`
	Days             []DaySummary `json:"days"`
	Types            []TypeStat   `json:"types"`
}

// SummarizeByDate kelompokkan per tanggal, urut tanggal terbaru dulu.
func SummarizeByDate(rows []RecordRow) []DaySummary {
	byDate := map[string]*DaySummary{}
	for _, r := range rows {
		key := r.Date.Format(dateLayout)
		d, ok := byDate[key]
		if !ok {
			d = &DaySummary{Date: key}
			byDate[key] = d
		}
		d.Total++
		if r.Completed {
			d.Completed++
		}
	}

	out := make([]DaySummary, 0, len(byDate))
	for _, d := range byDate {
		d.Percentage = progressService.Percentage(d.Completed, d.Total)
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

// RankByType urut rate tertinggi; seri -> nama A-Z.
func RankByType(rows []RecordRow) []TypeStat {
	byType := map[uuid.UUID]*TypeStat{}
	for _, r := range rows {
		s, ok := byType[r.IbadahTypeID]
		if !ok {
			s = &TypeStat{IbadahTypeID: r.IbadahTypeID, IbadahTypeName: r.IbadahTypeName}
			byType[r.IbadahTypeID] = s
		}
		s.Total++
		if r.Completed {
			s.Completed++
		}
	}

	out := make([]TypeStat, 0, len(byType))
	for _, s := range byType {
		s.Rate = progressService.Percentage(s.Completed, s.Total)
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		// bandingkan rasio eksak (hindari seri palsu karena pembulatan)
		li := out[i].Completed * out[j].Total
		lj := out[j].Completed * out[i].Total
		if li != lj {
			return li > lj
		}
		if out[i].IbadahTypeName != out[j].IbadahTypeName {
			return out[i].IbadahTypeName < out[j].IbadahTypeName
		}
		return out[i].IbadahTypeID.String() < out[j].IbadahTypeID.String()
	})
	return out
}

// CurrentStreak mundur hari per hari dari tanggal terbaru yang ada di days;
// berhenti di hari yang tidak lengkap atau tanggal yang tidak punya catatan.
func CurrentStreak(days []DaySummary) int {
	sorted := sortedDesc(days)
	if len(sorted) == 0 {
		return 0
	}

	expected, err := time.Parse(dateLayout, sorted[0].Date)
	if err != nil {
		return 0
	}
	streak := 0
	for _, d := range sorted {
		if d.Date != expected.Format(dateLayout) || !d.IsComplete() {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}
	return streak
}

// LongestStreak run terpanjang hari lengkap yang berurutan.
func LongestStreak(days []DaySummary) int {
	sorted := sortedDesc(days)
	best, run := 0, 0
	var prev time.Time
	for _, d := range sorted {
		cur, err := time.Parse(dateLayout, d.Date)
		if err != nil || !d.IsComplete() {
			run = 0
			continue
		}
		if run > 0 && prev.AddDate(0, 0, -1).Equal(cur) {
			run++
		} else {
			run = 1
		}
		prev = cur
		if run > best {
			best = run
		}
	}
	return best
}

// BuildAnalytics ringkasan lengkap untuk rentang from..to.
func BuildAnalytics(rows []RecordRow, from, to time.Time) Analytics {
	days := SummarizeByDate(rows)
	a := Analytics{
		From:          from.Format(dateLayout),
		To:            to.Format(dateLayout),
		DaysInRange:   int(to.Sub(from).Hours()/24) + 1,
		ActiveDays:    len(days),
		TotalRecords:  len(rows),
		CurrentStreak: CurrentStreak(days),
		LongestStreak: LongestStreak(days),
		Days:          days,
		Types:         RankByType(rows),
	}
	if a.DaysInRange < 0 {
		a.DaysInRange = 0
	}
	for _, r := range rows {
		if r.Completed {
			a.CompletedRecords++
		}
	}
	for _, d := range days {
		if d.IsComplete() {
			a.PerfectDays++
		}
	}
	a.CompletionRate = progressService.Percentage(a.CompletedRecords, a.TotalRecords)
	return a
}

func sortedDesc(days []DaySummary) []DaySummary {
	out := make([]DaySummary, len(days))
	copy(out, days)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}
