package dto

import (
	"encoding/json"
	"strings"

	"gorm.io/datatypes"

	"ibadahku_backend/internals/constants"
	model "ibadahku_backend/internals/features/ramadhan/model"
	helper "ibadahku_backend/internals/helpers"
)

type CreateRamadhanContentRequest struct {
	RamadhanContentKey         *string         `json:"ramadhan_content_key" validate:"omitempty,max=100"`
	RamadhanContentTitle       string          `json:"ramadhan_content_title" validate:"required,min=2,max=200"`
	RamadhanContentBody        string          `json:"ramadhan_content_body" validate:"required,min=1"`
	RamadhanContentType        string          `json:"ramadhan_content_type" validate:"omitempty,oneof=tips dua schedule article"`
	RamadhanContentDayNumber   *int            `json:"ramadhan_content_day_number" validate:"omitempty,min=1,max=30"`
	RamadhanContentMetadata    json.RawMessage `json:"ramadhan_content_metadata"`
	RamadhanContentIsPublished *bool           `json:"ramadhan_content_is_published"`
	RamadhanContentSortOrder   *int            `json:"ramadhan_content_sort_order"`
}

func (r *CreateRamadhanContentRequest) Normalize() {
	r.RamadhanContentKey = helper.TrimPtr(r.RamadhanContentKey)
	r.RamadhanContentTitle = strings.TrimSpace(r.RamadhanContentTitle)
	r.RamadhanContentBody = strings.TrimSpace(r.RamadhanContentBody)
	r.RamadhanContentType = strings.ToLower(strings.TrimSpace(r.RamadhanContentType))
	if r.RamadhanContentType == "" {
		r.RamadhanContentType = constants.RamadhanTips
	}
}

// ToModel: key belum di-resolve (diisi controller).
func (r *CreateRamadhanContentRequest) ToModel() *model.RamadhanContentModel {
	m := &model.RamadhanContentModel{
		RamadhanContentTitle:     r.RamadhanContentTitle,
		RamadhanContentBody:      r.RamadhanContentBody,
		RamadhanContentType:      r.RamadhanContentType,
		RamadhanContentDayNumber: r.RamadhanContentDayNumber,
		RamadhanContentMetadata:  metadataOf(r.RamadhanContentMetadata),
	}
	if r.RamadhanContentIsPublished != nil {
		m.RamadhanContentIsPublished = *r.RamadhanContentIsPublished
	}
	if r.RamadhanContentSortOrder != nil {
		m.RamadhanContentSortOrder = *r.RamadhanContentSortOrder
	}
	return m
}

type PatchRamadhanContentRequest struct {
	RamadhanContentKey         helper.PatchField[string]          `json:"ramadhan_content_key"`
	RamadhanContentTitle       helper.PatchField[string]          `json:"ramadhan_content_title"`
	RamadhanContentBody        helper.PatchField[string]          `json:"ramadhan_content_body"`
	RamadhanContentType        helper.PatchField[string]          `json:"ramadhan_content_type"`
	RamadhanContentDayNumber   helper.PatchField[int]             `json:"ramadhan_content_day_number"`
	RamadhanContentMetadata    helper.PatchField[json.RawMessage] `json:"ramadhan_content_metadata"`
	RamadhanContentIsPublished helper.PatchField[bool]            `json:"ramadhan_content_is_published"`
	RamadhanContentSortOrder   helper.PatchField[int]             `json:"ramadhan_content_sort_order"`
}

// Apply terapkan field yang dikirim; error per field.
func (r *PatchRamadhanContentRequest) Apply(m *model.RamadhanContentModel) map[string][]string {
	errs := map[string][]string{}

	if v, ok := r.RamadhanContentKey.Get(); ok {
		if v == nil || strings.TrimSpace(*v) == "" {
			errs["ramadhan_content_key"] = append(errs["ramadhan_content_key"], "tidak boleh kosong")
		} else {
			m.RamadhanContentKey = strings.TrimSpace(*v)
		}
	}
	if v, ok := r.RamadhanContentTitle.Get(); ok {
		t := ""
		if v != nil {
			t = strings.TrimSpace(*v)
		}
		if len(t) < 2 || len(t) > 200 {
			errs["ramadhan_content_title"] = append(errs["ramadhan_content_title"], "panjang 2 sampai 200 karakter")
		} else {
			m.RamadhanContentTitle = t
		}
	}
	if v, ok := r.RamadhanContentBody.Get(); ok {
		if v == nil || strings.TrimSpace(*v) == "" {
			errs["ramadhan_content_body"] = append(errs["ramadhan_content_body"], "tidak boleh kosong")
		} else {
			m.RamadhanContentBody = strings.TrimSpace(*v)
		}
	}
	if v, ok := r.RamadhanContentType.Get(); ok {
		t := ""
		if v != nil {
			t = strings.ToLower(strings.TrimSpace(*v))
		}
		if !ValidType(t) {
			errs["ramadhan_content_type"] = append(errs["ramadhan_content_type"], "harus salah satu: tips dua schedule article")
		} else {
			m.RamadhanContentType = t
		}
	}
	if v, ok := r.RamadhanContentDayNumber.Get(); ok {
		if v != nil && (*v < 1 || *v > 30) {
			errs["ramadhan_content_day_number"] = append(errs["ramadhan_content_day_number"], "antara 1 sampai 30")
		} else {
			m.RamadhanContentDayNumber = v
		}
	}
	if v, ok := r.RamadhanContentMetadata.Get(); ok {
		if v != nil && !json.Valid(*v) {
			errs["ramadhan_content_metadata"] = append(errs["ramadhan_content_metadata"], "harus JSON valid")
		} else if v == nil {
			m.RamadhanContentMetadata = nil
		} else {
			m.RamadhanContentMetadata = metadataOf(*v)
		}
	}
	if r.RamadhanContentIsPublished.Set() {
		m.RamadhanContentIsPublished = *r.RamadhanContentIsPublished.Value
	}
	if r.RamadhanContentSortOrder.Set() {
		m.RamadhanContentSortOrder = *r.RamadhanContentSortOrder.Value
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidType(t string) bool {
	switch t {
	case constants.RamadhanTips, constants.RamadhanDua, constants.RamadhanSchedule, constants.RamadhanArticle:
		return true
	}
	return false
}

// ValidMetadata kosong/null boleh; selain itu harus JSON valid.
func ValidMetadata(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null" || json.Valid(raw)
}

func metadataOf(raw json.RawMessage) datatypes.JSON {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return nil
	}
	return datatypes.JSON(raw)
}

type PublicRamadhanResponse struct {
	RamadhanMode bool                         `json:"ramadhan_mode"`
	Items        []model.RamadhanContentModel `json:"items"`
}
