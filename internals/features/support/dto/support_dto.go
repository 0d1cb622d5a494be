package dto

import "strings"

type CreateSupportRequest struct {
	Subject string `json:"subject" validate:"required,min=3,max=150"`
	Message string `json:"message" validate:"required,min=1,max=5000"`
}

func (r *CreateSupportRequest) Normalize() {
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)
}

// ReplySupportRequest; status kosong -> resolved.
type ReplySupportRequest struct {
	Reply  string `json:"reply" validate:"required,min=1,max=5000"`
	Status string `json:"status" validate:"omitempty,oneof=open in_progress resolved closed"`
}

func (r *ReplySupportRequest) Normalize() {
	r.Reply = strings.TrimSpace(r.Reply)
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
}

type UpdateSupportStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open in_progress resolved closed"`
}

func (r *UpdateSupportStatusRequest) Normalize() {
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
}
