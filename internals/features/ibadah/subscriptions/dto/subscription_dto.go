package dto

import "github.com/google/uuid"

type SubscribeRequest struct {
	IbadahTypeID uuid.UUID `json:"ibadah_type_id" validate:"required"`
	TargetCount  *int      `json:"target_count" validate:"omitempty,gte=1,lte=100000"`
}

type PatchSubscriptionRequest struct {
	TargetCount *int  `json:"target_count" validate:"omitempty,gte=1,lte=100000"`
	IsActive    *bool `json:"is_active"`
}

func (r *PatchSubscriptionRequest) Empty() bool {
	return r.TargetCount == nil && r.IsActive == nil
}
