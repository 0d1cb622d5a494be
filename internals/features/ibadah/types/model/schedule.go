package model

import (
	"time"

	"ibadahku_backend/internals/constants"
)

const dateLayout = "2006-01-02"

// hari default ibadah mingguan: Jumat
const defaultWeekday = int64(time.Friday)

func dateKey(t time.Time) string { return t.Format(dateLayout) }

// IsScheduledOn true kalau ibadah ini berlaku pada tanggal (sipil) date.
// schedule_type menentukan rentang berlaku; frequency menyaring hari di dalamnya.
func (t *IbadahTypeModel) IsScheduledOn(date time.Time) bool {
	key := dateKey(date)

	switch t.IbadahTypeScheduleType {
	case constants.ScheduleSpecificDates:
		for _, d := range t.IbadahTypeSpecificDates {
			if d == key {
				return true
			}
		}
		return false
	case constants.ScheduleDateRange:
		if t.IbadahTypeStartDate != nil && key < dateKey(*t.IbadahTypeStartDate) {
			return false
		}
		if t.IbadahTypeEndDate != nil && key > dateKey(*t.IbadahTypeEndDate) {
			return false
		}
	}

	switch t.IbadahTypeFrequency {
	case constants.FrequencyWeekly:
		days := []int64(t.IbadahTypeDaysOfWeek)
		if len(days) == 0 {
			days = []int64{defaultWeekday}
		}
		wd := int64(date.Weekday())
		for _, d := range days {
			if d == wd {
				return true
			}
		}
		return false
	case constants.FrequencyMonthly:
		day := 1
		if t.IbadahTypeStartDate != nil {
			day = t.IbadahTypeStartDate.Day()
		}
		// tgl 31 di bulan pendek jatuh ke hari terakhir bulan itu
		if last := lastDayOfMonth(date); day > last {
			day = last
		}
		return date.Day() == day
	}
	return true
}

// IsVisible: nonaktif / terhapus disembunyikan, khusus Ramadhan hanya saat mode Ramadhan.
func (t *IbadahTypeModel) IsVisible(ramadhanMode bool) bool {
	if !t.IbadahTypeIsActive || t.IbadahTypeDeletedAt.Valid {
		return false
	}
	if t.IbadahTypeIsRamadhanOnly && !ramadhanMode {
		return false
	}
	return true
}

// EffectiveTarget: checklist selalu 1, count minimal 1.
func (t *IbadahTypeModel) EffectiveTarget() int {
	if t.IbadahTypeTrackingType == constants.TrackingChecklist || t.IbadahTypeDefaultTarget < 1 {
		return 1
	}
	return t.IbadahTypeDefaultTarget
}

func lastDayOfMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
