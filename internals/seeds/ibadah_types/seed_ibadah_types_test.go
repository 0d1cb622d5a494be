package ibadahtypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ibadahku_backend/internals/constants"
)

func TestLoadDefaults(t *testing.T) {
	seeds, err := LoadDefaults()
	require.NoError(t, err)
	require.Len(t, seeds, 10)

	byCode := map[string]IbadahTypeSeed{}
	for _, s := range seeds {
		_, dup := byCode[s.Code]
		assert.False(t, dup, "code duplikat: %s", s.Code)
		byCode[s.Code] = s
	}

	for _, code := range []string{"sholat_subuh", "sholat_dzuhur", "sholat_ashar", "sholat_maghrib", "sholat_isya"} {
		s, ok := byCode[code]
		require.True(t, ok, code)
		assert.Equal(t, constants.TrackingChecklist, s.TrackingType)
	}

	tilawah := byCode["tilawah"]
	assert.Equal(t, constants.TrackingCount, tilawah.TrackingType)
	require.NotNil(t, tilawah.Unit)
	assert.Equal(t, "halaman", *tilawah.Unit)

	assert.True(t, byCode["sholat_tarawih"].IsRamadhanOnly)

	puasa := byCode["puasa_senin_kamis"]
	assert.Equal(t, constants.FrequencyWeekly, puasa.Frequency)
	assert.ElementsMatch(t, []int64{1, 4}, puasa.DaysOfWeek)
}

func TestSeedToModel(t *testing.T) {
	m := IbadahTypeSeed{Code: "x", Name: "X", TrackingType: constants.TrackingChecklist, Frequency: constants.FrequencyDaily}.toModel()
	assert.Equal(t, 1, m.IbadahTypeDefaultTarget)
	assert.True(t, m.IbadahTypeIsDefault)
	assert.True(t, m.IbadahTypeIsActive)
	assert.Equal(t, constants.ScheduleAlways, m.IbadahTypeScheduleType)
}
