package dto

import (
	"strings"

	helper "ibadahku_backend/internals/helpers"
)

type UpsertMuhasabahRequest struct {
	EntryDate *string `json:"entry_date" validate:"omitempty,datetime=2006-01-02"`
	Content   string  `json:"content" validate:"required,min=1,max=5000"`
	Mood      *int    `json:"mood" validate:"omitempty,min=1,max=5"`
	Gratitude *string `json:"gratitude" validate:"omitempty,max=2000"`
}

func (r *UpsertMuhasabahRequest) Normalize() {
	r.Content = strings.TrimSpace(r.Content)
	r.EntryDate = helper.TrimPtr(r.EntryDate)
	r.Gratitude = helper.TrimPtr(r.Gratitude)
}
