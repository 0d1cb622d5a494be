package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ibadahku_backend/internals/constants"
	model "ibadahku_backend/internals/features/ramadhan/model"
)

func TestCreateRamadhanContentRequest_DefaultsType(t *testing.T) {
	req := CreateRamadhanContentRequest{RamadhanContentTitle: "  Doa Berbuka  ", RamadhanContentBody: " ... "}
	req.Normalize()
	assert.Equal(t, constants.RamadhanTips, req.RamadhanContentType)
	assert.Equal(t, "Doa Berbuka", req.RamadhanContentTitle)

	m := req.ToModel()
	assert.False(t, m.RamadhanContentIsPublished)
	assert.Nil(t, m.RamadhanContentMetadata)
}

func TestPatchRamadhanContentRequest_Apply(t *testing.T) {
	day := 3
	m := &model.RamadhanContentModel{
		RamadhanContentTitle:     "Lama",
		RamadhanContentType:      constants.RamadhanTips,
		RamadhanContentDayNumber: &day,
	}
	var req PatchRamadhanContentRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"ramadhan_content_title": "Jadwal Imsak",
		"ramadhan_content_type": "SCHEDULE",
		"ramadhan_content_day_number": null,
		"ramadhan_content_metadata": {"city": "Jakarta"},
		"ramadhan_content_is_published": true
	}`), &req))

	errs := req.Apply(m)
	require.Nil(t, errs)
	assert.Equal(t, "Jadwal Imsak", m.RamadhanContentTitle)
	assert.Equal(t, constants.RamadhanSchedule, m.RamadhanContentType)
	assert.Nil(t, m.RamadhanContentDayNumber)
	assert.JSONEq(t, `{"city":"Jakarta"}`, string(m.RamadhanContentMetadata))
	assert.True(t, m.RamadhanContentIsPublished)
}

func TestPatchRamadhanContentRequest_ApplyErrors(t *testing.T) {
	m := &model.RamadhanContentModel{RamadhanContentTitle: "Lama"}
	var req PatchRamadhanContentRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"ramadhan_content_title": "x",
		"ramadhan_content_type": "video",
		"ramadhan_content_day_number": 31
	}`), &req))

	errs := req.Apply(m)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "ramadhan_content_title")
	assert.Contains(t, errs, "ramadhan_content_type")
	assert.Contains(t, errs, "ramadhan_content_day_number")
	assert.Equal(t, "Lama", m.RamadhanContentTitle)
}

func TestValidMetadata(t *testing.T) {
	assert.True(t, ValidMetadata(nil))
	assert.True(t, ValidMetadata(json.RawMessage("null")))
	assert.True(t, ValidMetadata(json.RawMessage(`{"a":1}`)))
	assert.False(t, ValidMetadata(json.RawMessage(`{a:1}`)))
}
