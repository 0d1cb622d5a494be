package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func TestAdminPatchUserRequest_GuardSelf(t *testing.T) {
	me := uuid.New()
	other := uuid.New()

	tests := []struct {
		name   string
		req    AdminPatchUserRequest
		target uuid.UUID
		want   error
	}{
		{"demote self", AdminPatchUserRequest{IsAdmin: boolPtr(false)}, me, ErrSelfDemote},
		{"deactivate self", AdminPatchUserRequest{IsActive: boolPtr(false)}, me, ErrSelfDeactivate},
		{"rename self", AdminPatchUserRequest{IsAdmin: boolPtr(true), IsActive: boolPtr(true)}, me, nil},
		{"demote other", AdminPatchUserRequest{IsAdmin: boolPtr(false), IsActive: boolPtr(false)}, other, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.GuardSelf(me, tt.target))
		})
	}
}

func TestAdminPatchUserRequest_Updates(t *testing.T) {
	name := "  Fulanah  "
	req := AdminPatchUserRequest{FullName: &name, IsActive: boolPtr(false)}
	req.Normalize()

	assert.False(t, req.Empty())
	assert.Equal(t, map[string]any{"full_name": "Fulanah", "is_active": false}, req.Updates())
	assert.True(t, (&AdminPatchUserRequest{}).Empty())
}
