package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ibadahku_backend/internals/constants"
	model "ibadahku_backend/internals/features/ibadah/types/model"
	helper "ibadahku_backend/internals/helpers"
)

func strp(s string) *string { return &s }

func TestCreateRequest_DefaultsAndValidation(t *testing.T) {
	req := CreateIbadahTypeRequest{
		IbadahTypeName:         "  Sholat Dhuha ",
		IbadahTypeTrackingType: "Checklist",
	}
	req.Normalize()
	require.Nil(t, helper.ValidateStruct(&req))

	m := req.ToModel()
	assert.Equal(t, "Sholat Dhuha", m.IbadahTypeName)
	assert.Equal(t, constants.FrequencyDaily, m.IbadahTypeFrequency)
	assert.Equal(t, constants.ScheduleAlways, m.IbadahTypeScheduleType)
	assert.Equal(t, 1, m.IbadahTypeDefaultTarget)
	assert.True(t, m.IbadahTypeIsActive)
	assert.Nil(t, ValidateSchedule(m))
}

func TestCreateRequest_InvalidEnums(t *testing.T) {
	req := CreateIbadahTypeRequest{
		IbadahTypeName:         "X",
		IbadahTypeTrackingType: "timer",
		IbadahTypeDaysOfWeek:   []int64{7},
	}
	req.Normalize()
	errs := helper.ValidateStruct(&req)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "ibadah_type_name")
	assert.Contains(t, errs, "ibadah_type_tracking_type")
	assert.Contains(t, errs, "ibadah_type_days_of_week[0]")
}

func TestValidateSchedule(t *testing.T) {
	base := func() *model.IbadahTypeModel {
		return &model.IbadahTypeModel{
			IbadahTypeName:          "Tarawih",
			IbadahTypeTrackingType:  constants.TrackingChecklist,
			IbadahTypeFrequency:     constants.FrequencyDaily,
			IbadahTypeScheduleType:  constants.ScheduleAlways,
			IbadahTypeDefaultTarget: 1,
		}
	}

	t.Run("date range reversed", func(t *testing.T) {
		m := base()
		m.IbadahTypeScheduleType = constants.ScheduleDateRange
		m.IbadahTypeStartDate = parseDatePtr(strp("2026-03-10"))
		m.IbadahTypeEndDate = parseDatePtr(strp("2026-03-01"))
		assert.Contains(t, ValidateSchedule(m), "ibadah_type_end_date")
	})

	t.Run("specific dates empty", func(t *testing.T) {
		m := base()
		m.IbadahTypeScheduleType = constants.ScheduleSpecificDates
		assert.Contains(t, ValidateSchedule(m), "ibadah_type_specific_dates")
	})

	t.Run("specific dates invalid", func(t *testing.T) {
		m := base()
		m.IbadahTypeScheduleType = constants.ScheduleSpecificDates
		m.IbadahTypeSpecificDates = []string{"2026-13-40"}
		assert.Contains(t, ValidateSchedule(m), "ibadah_type_specific_dates")
	})

	t.Run("count needs target", func(t *testing.T) {
		m := base()
		m.IbadahTypeTrackingType = constants.TrackingCount
		m.IbadahTypeDefaultTarget = 0
		assert.Contains(t, ValidateSchedule(m), "ibadah_type_default_target")
	})

	t.Run("valid", func(t *testing.T) {
		assert.Nil(t, ValidateSchedule(base()))
	})
}

func TestPatchRequest_Apply(t *testing.T) {
	m := &model.IbadahTypeModel{
		IbadahTypeName:         "Tilawah",
		IbadahTypeTrackingType: constants.TrackingCount,
		IbadahTypeUnit:         strp("halaman"),
	}

	var req PatchIbadahTypeRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"ibadah_type_default_target": 10,
		"ibadah_type_unit": null,
		"ibadah_type_start_date": "2026-03-01"
	}`), &req))

	assert.Nil(t, req.Apply(m))
	assert.Equal(t, 10, m.IbadahTypeDefaultTarget)
	assert.Nil(t, m.IbadahTypeUnit)
	require.NotNil(t, m.IbadahTypeStartDate)
	assert.Equal(t, "2026-03-01", m.IbadahTypeStartDate.Format("2006-01-02"))
	assert.Equal(t, "Tilawah", m.IbadahTypeName)
}

func TestPatchRequest_NullName(t *testing.T) {
	var req PatchIbadahTypeRequest
	require.NoError(t, json.Unmarshal([]byte(`{"ibadah_type_name": null}`), &req))
	errs := req.Apply(&model.IbadahTypeModel{IbadahTypeName: "A"})
	assert.Contains(t, errs, "ibadah_type_name")
}
