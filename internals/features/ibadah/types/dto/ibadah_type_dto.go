// file: internals/features/ibadah/types/dto/ibadah_type_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/lib/pq"

	"ibadahku_backend/internals/constants"
	model "ibadahku_backend/internals/features/ibadah/types/model"
	helper "ibadahku_backend/internals/helpers"
	"ibadahku_backend/internals/helpers/dbtime"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateIbadahTypeRequest struct {
	IbadahTypeCode           *string  `json:"ibadah_type_code" validate:"omitempty,max=80"`
	IbadahTypeName           string   `json:"ibadah_type_name" validate:"required,min=2,max=120"`
	IbadahTypeDescription    *string  `json:"ibadah_type_description" validate:"omitempty,max=2000"`
	IbadahTypeTrackingType   string   `json:"ibadah_type_tracking_type" validate:"required,oneof=checklist count"`
	IbadahTypeFrequency      string   `json:"ibadah_type_frequency" validate:"omitempty,oneof=daily weekly monthly"`
	IbadahTypeScheduleType   string   `json:"ibadah_type_schedule_type" validate:"omitempty,oneof=always date_range specific_dates"`
	IbadahTypeStartDate      *string  `json:"ibadah_type_start_date" validate:"omitempty,datetime=2006-01-02"`
	IbadahTypeEndDate        *string  `json:"ibadah_type_end_date" validate:"omitempty,datetime=2006-01-02"`
	IbadahTypeSpecificDates  []string `json:"ibadah_type_specific_dates" validate:"omitempty,max=366,dive,datetime=2006-01-02"`
	IbadahTypeDaysOfWeek     []int64  `json:"ibadah_type_days_of_week" validate:"omitempty,max=7,dive,gte=0,lte=6"`
	IbadahTypeDefaultTarget  *int     `json:"ibadah_type_default_target" validate:"omitempty,gte=1,lte=100000"`
	IbadahTypeUnit           *string  `json:"ibadah_type_unit" validate:"omitempty,max=30"`
	IbadahTypeIcon           *string  `json:"ibadah_type_icon" validate:"omitempty,max=60"`
	IbadahTypeSortOrder      *int     `json:"ibadah_type_sort_order"`
	IbadahTypeIsDefault      *bool    `json:"ibadah_type_is_default"`
	IbadahTypeIsRamadhanOnly *bool    `json:"ibadah_type_is_ramadhan_only"`
	IbadahTypeIsActive       *bool    `json:"ibadah_type_is_active"`
}

func (r *CreateIbadahTypeRequest) Normalize() {
	r.IbadahTypeName = strings.TrimSpace(r.IbadahTypeName)
	r.IbadahTypeCode = helper.TrimPtr(r.IbadahTypeCode)
	r.IbadahTypeDescription = helper.TrimPtr(r.IbadahTypeDescription)
	r.IbadahTypeTrackingType = strings.ToLower(strings.TrimSpace(r.IbadahTypeTrackingType))
	r.IbadahTypeFrequency = strings.ToLower(strings.TrimSpace(r.IbadahTypeFrequency))
	r.IbadahTypeScheduleType = strings.ToLower(strings.TrimSpace(r.IbadahTypeScheduleType))
	r.IbadahTypeStartDate = helper.TrimPtr(r.IbadahTypeStartDate)
	r.IbadahTypeEndDate = helper.TrimPtr(r.IbadahTypeEndDate)
	r.IbadahTypeUnit = helper.TrimPtr(r.IbadahTypeUnit)
	r.IbadahTypeIcon = helper.TrimPtr(r.IbadahTypeIcon)
	if r.IbadahTypeFrequency == "" {
		r.IbadahTypeFrequency = constants.FrequencyDaily
	}
	if r.IbadahTypeScheduleType == "" {
		r.IbadahTypeScheduleType = constants.ScheduleAlways
	}
	for i, d := range r.IbadahTypeSpecificDates {
		r.IbadahTypeSpecificDates[i] = strings.TrimSpace(d)
	}
}

// ToModel: kode belum di-resolve (diisi controller).
func (r *CreateIbadahTypeRequest) ToModel() *model.IbadahTypeModel {
	m := &model.IbadahTypeModel{
		IbadahTypeName:          r.IbadahTypeName,
		IbadahTypeDescription:   r.IbadahTypeDescription,
		IbadahTypeTrackingType:  r.IbadahTypeTrackingType,
		IbadahTypeFrequency:     r.IbadahTypeFrequency,
		IbadahTypeScheduleType:  r.IbadahTypeScheduleType,
		IbadahTypeStartDate:     parseDatePtr(r.IbadahTypeStartDate),
		IbadahTypeEndDate:       parseDatePtr(r.IbadahTypeEndDate),
		IbadahTypeSpecificDates: pq.StringArray(r.IbadahTypeSpecificDates),
		IbadahTypeDaysOfWeek:    pq.Int64Array(r.IbadahTypeDaysOfWeek),
		IbadahTypeDefaultTarget: 1,
		IbadahTypeUnit:          r.IbadahTypeUnit,
		IbadahTypeIcon:          r.IbadahTypeIcon,
		IbadahTypeIsActive:      true,
	}
	if r.IbadahTypeDefaultTarget != nil {
		m.IbadahTypeDefaultTarget = *r.IbadahTypeDefaultTarget
	}
	if r.IbadahTypeSortOrder != nil {
		m.IbadahTypeSortOrder = *r.IbadahTypeSortOrder
	}
	if r.IbadahTypeIsDefault != nil {
		m.IbadahTypeIsDefault = *r.IbadahTypeIsDefault
	}
	if r.IbadahTypeIsRamadhanOnly != nil {
		m.IbadahTypeIsRamadhanOnly = *r.IbadahTypeIsRamadhanOnly
	}
	if r.IbadahTypeIsActive != nil {
		m.IbadahTypeIsActive = *r.IbadahTypeIsActive
	}
	return m
}

/* =========================================================
   PATCH (partial)
   ========================================================= */

type PatchIbadahTypeRequest struct {
	IbadahTypeCode           helper.PatchField[string]   `json:"ibadah_type_code"`
	IbadahTypeName           helper.PatchField[string]   `json:"ibadah_type_name"`
	IbadahTypeDescription    helper.PatchField[string]   `json:"ibadah_type_description"`
	IbadahTypeTrackingType   helper.PatchField[string]   `json:"ibadah_type_tracking_type"`
	IbadahTypeFrequency      helper.PatchField[string]   `json:"ibadah_type_frequency"`
	IbadahTypeScheduleType   helper.PatchField[string]   `json:"ibadah_type_schedule_type"`
	IbadahTypeStartDate      helper.PatchField[string]   `json:"ibadah_type_start_date"`
	IbadahTypeEndDate        helper.PatchField[string]   `json:"ibadah_type_end_date"`
	IbadahTypeSpecificDates  helper.PatchField[[]string] `json:"ibadah_type_specific_dates"`
	IbadahTypeDaysOfWeek     helper.PatchField[[]int64]  `json:"ibadah_type_days_of_week"`
	IbadahTypeDefaultTarget  helper.PatchField[int]      `json:"ibadah_type_default_target"`
	IbadahTypeUnit           helper.PatchField[string]   `json:"ibadah_type_unit"`
	IbadahTypeIcon           helper.PatchField[string]   `json:"ibadah_type_icon"`
	IbadahTypeSortOrder      helper.PatchField[int]      `json:"ibadah_type_sort_order"`
	IbadahTypeIsDefault      helper.PatchField[bool]     `json:"ibadah_type_is_default"`
	IbadahTypeIsRamadhanOnly helper.PatchField[bool]     `json:"ibadah_type_is_ramadhan_only"`
	IbadahTypeIsActive       helper.PatchField[bool]     `json:"ibadah_type_is_active"`
}

// Apply menerapkan field yang dikirim ke model; error field untuk nilai yang tidak boleh null.
func (p *PatchIbadahTypeRequest) Apply(m *model.IbadahTypeModel) map[string][]string {
	errs := map[string][]string{}
	nullErr := func(field string) { errs[field] = append(errs[field], "tidak boleh null") }

	if v, ok := p.IbadahTypeName.Get(); ok {
		if v == nil {
			nullErr("ibadah_type_name")
		} else {
			m.IbadahTypeName = strings.TrimSpace(*v)
		}
	}
	if v, ok := p.IbadahTypeCode.Get(); ok && v != nil {
		m.IbadahTypeCode = strings.TrimSpace(*v)
	}
	if v, ok := p.IbadahTypeDescription.Get(); ok {
		m.IbadahTypeDescription = helper.TrimPtr(v)
	}
	if v, ok := p.IbadahTypeTrackingType.Get(); ok {
		if v == nil {
			nullErr("ibadah_type_tracking_type")
		} else {
			m.IbadahTypeTrackingType = strings.ToLower(strings.TrimSpace(*v))
		}
	}
	if v, ok := p.IbadahTypeFrequency.Get(); ok {
		m.IbadahTypeFrequency = constants.FrequencyDaily
		if v != nil {
			m.IbadahTypeFrequency = strings.ToLower(strings.TrimSpace(*v))
		}
	}
	if v, ok := p.IbadahTypeScheduleType.Get(); ok {
		m.IbadahTypeScheduleType = constants.ScheduleAlways
		if v != nil {
			m.IbadahTypeScheduleType = strings.ToLower(strings.TrimSpace(*v))
		}
	}
	if v, ok := p.IbadahTypeStartDate.Get(); ok {
		m.IbadahTypeStartDate = nil
		if v := helper.TrimPtr(v); v != nil {
			if d, err := dbtime.ParseDate(*v); err == nil {
				m.IbadahTypeStartDate = &d
			} else {
				errs["ibadah_type_start_date"] = append(errs["ibadah_type_start_date"], "format tanggal harus 2006-01-02")
			}
		}
	}
	if v, ok := p.IbadahTypeEndDate.Get(); ok {
		m.IbadahTypeEndDate = nil
		if v := helper.TrimPtr(v); v != nil {
			if d, err := dbtime.ParseDate(*v); err == nil {
				m.IbadahTypeEndDate = &d
			} else {
				errs["ibadah_type_end_date"] = append(errs["ibadah_type_end_date"], "format tanggal harus 2006-01-02")
			}
		}
	}
	if v, ok := p.IbadahTypeSpecificDates.Get(); ok {
		m.IbadahTypeSpecificDates = nil
		if v != nil {
			m.IbadahTypeSpecificDates = pq.StringArray(*v)
		}
	}
	if v, ok := p.IbadahTypeDaysOfWeek.Get(); ok {
		m.IbadahTypeDaysOfWeek = nil
		if v != nil {
			m.IbadahTypeDaysOfWeek = pq.Int64Array(*v)
		}
	}
	if v, ok := p.IbadahTypeDefaultTarget.Get(); ok {
		if v == nil {
			nullErr("ibadah_type_default_target")
		} else {
			m.IbadahTypeDefaultTarget = *v
		}
	}
	if v, ok := p.IbadahTypeUnit.Get(); ok {
		m.IbadahTypeUnit = helper.TrimPtr(v)
	}
	if v, ok := p.IbadahTypeIcon.Get(); ok {
		m.IbadahTypeIcon = helper.TrimPtr(v)
	}
	if v, ok := p.IbadahTypeSortOrder.Get(); ok && v != nil {
		m.IbadahTypeSortOrder = *v
	}
	if v, ok := p.IbadahTypeIsDefault.Get(); ok && v != nil {
		m.IbadahTypeIsDefault = *v
	}
	if v, ok := p.IbadahTypeIsRamadhanOnly.Get(); ok && v != nil {
		m.IbadahTypeIsRamadhanOnly = *v
	}
	if v, ok := p.IbadahTypeIsActive.Get(); ok && v != nil {
		m.IbadahTypeIsActive = *v
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

/* =========================================================
   Aturan lintas field (dipakai create & patch)
   ========================================================= */

// ValidateSchedule cek konsistensi mode pencatatan & jadwal.
func ValidateSchedule(m *model.IbadahTypeModel) map[string][]string {
	errs := map[string][]string{}
	add := func(field, msg string) { errs[field] = append(errs[field], msg) }

	if len(strings.TrimSpace(m.IbadahTypeName)) < 2 {
		add("ibadah_type_name", "minimal 2")
	}
	switch m.IbadahTypeTrackingType {
	case constants.TrackingChecklist, constants.TrackingCount:
	default:
		add("ibadah_type_tracking_type", "harus salah satu dari: checklist count")
	}
	switch m.IbadahTypeFrequency {
	case constants.FrequencyDaily, constants.FrequencyWeekly, constants.FrequencyMonthly:
	default:
		add("ibadah_type_frequency", "harus salah satu dari: daily weekly monthly")
	}
	if m.IbadahTypeTrackingType == constants.TrackingCount && m.IbadahTypeDefaultTarget < 1 {
		add("ibadah_type_default_target", "harus >= 1 untuk mode count")
	}
	for _, d := range m.IbadahTypeDaysOfWeek {
		if d < 0 || d > 6 {
			add("ibadah_type_days_of_week", "hari harus 0 (Minggu) sampai 6 (Sabtu)")
			break
		}
	}

	switch m.IbadahTypeScheduleType {
	case constants.ScheduleAlways:
	case constants.ScheduleDateRange:
		if m.IbadahTypeStartDate != nil && m.IbadahTypeEndDate != nil &&
			m.IbadahTypeStartDate.After(*m.IbadahTypeEndDate) {
			add("ibadah_type_end_date", "tidak boleh sebelum tanggal mulai")
		}
	case constants.ScheduleSpecificDates:
		if len(m.IbadahTypeSpecificDates) == 0 {
			add("ibadah_type_specific_dates", "minimal 1 tanggal")
		}
		for _, d := range m.IbadahTypeSpecificDates {
			if _, err := dbtime.ParseDate(d); err != nil {
				add("ibadah_type_specific_dates", "format tanggal harus 2006-01-02")
				break
			}
		}
	default:
		add("ibadah_type_schedule_type", "harus salah satu dari: always date_range specific_dates")
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func parseDatePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	d, err := dbtime.ParseDate(*s)
	if err != nil {
		return nil
	}
	return &d
}

/* =========================================================
   Response user (katalog)
   ========================================================= */

type IbadahTypeCatalogItem struct {
	*model.IbadahTypeModel
	IsScheduledToday bool `json:"is_scheduled"`
	IsSubscribed     bool `json:"is_subscribed"`
}
