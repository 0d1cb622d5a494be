package dto

import (
	"github.com/google/uuid"

	helper "ibadahku_backend/internals/helpers"
)

// UpsertRecordRequest; checklist pakai is_completed, count pakai count_value.
type UpsertRecordRequest struct {
	IbadahTypeID uuid.UUID `json:"ibadah_type_id" validate:"required"`
	RecordDate   *string   `json:"record_date" validate:"omitempty,datetime=2006-01-02"`
	IsCompleted  *bool     `json:"is_completed"`
	CountValue   *int      `json:"count_value" validate:"omitempty,gte=0,lte=100000"`
	Notes        *string   `json:"notes" validate:"omitempty,max=1000"`
}

func (r *UpsertRecordRequest) Normalize() {
	r.RecordDate = helper.TrimPtr(r.RecordDate)
	r.Notes = helper.TrimPtr(r.Notes)
}
