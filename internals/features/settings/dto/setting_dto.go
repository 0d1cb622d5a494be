package dto

import (
	"encoding/json"
	"strings"

	settingModel "ibadahku_backend/internals/features/settings/model"
)

type UpsertSettingRequest struct {
	AdminSettingValue       json.RawMessage `json:"admin_setting_value" validate:"required"`
	AdminSettingDescription *string         `json:"admin_setting_description" validate:"omitempty,max=500"`
}

func (r *UpsertSettingRequest) Normalize() {
	if r.AdminSettingDescription != nil {
		v := strings.TrimSpace(*r.AdminSettingDescription)
		r.AdminSettingDescription = &v
	}
}

// ValidJSON nilai harus JSON valid & bukan null.
func (r *UpsertSettingRequest) ValidJSON() bool {
	raw := strings.TrimSpace(string(r.AdminSettingValue))
	return raw != "" && raw != "null" && json.Valid(r.AdminSettingValue)
}

type PublicSettingsResponse struct {
	RamadhanMode bool                       `json:"ramadhan_mode"`
	Settings     map[string]json.RawMessage `json:"settings"`
}

func ToPublicMap(rows []settingModel.AdminSettingModel) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(rows))
	for _, r := range rows {
		out[r.AdminSettingKey] = json.RawMessage(r.AdminSettingValue)
	}
	return out
}
