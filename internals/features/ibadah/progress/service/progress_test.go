package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"ibadahku_backend/internals/constants"
)

func TestComputeProgress_ChecklistCompleted(t *testing.T) {
	id := uuid.New()
	subs := []Subscription{{IbadahTypeID: id, TrackingType: constants.TrackingChecklist, Target: 1}}
	obs := []Observation{{IbadahTypeID: id, IsCompleted: true}}

	p := ComputeProgress(subs, obs)
	assert.Equal(t, Progress{Completed: 1, Total: 1, Percentage: 100}, p)
}

func TestComputeProgress_CountBelowTarget(t *testing.T) {
	id := uuid.New()
	sub := Subscription{IbadahTypeID: id, TrackingType: constants.TrackingCount, Target: 5}
	obs := Observation{IbadahTypeID: id, CountValue: 3}

	assert.False(t, IsCompleted(sub, &obs))
	assert.Equal(t, 0, ComputeProgress([]Subscription{sub}, []Observation{obs}).Percentage)
}

func TestComputeProgress_EmptySubscriptions(t *testing.T) {
	p := ComputeProgress(nil, []Observation{{IbadahTypeID: uuid.New(), IsCompleted: true}})
	assert.Equal(t, 0, p.Total)
	assert.Equal(t, 0, p.Percentage)
}

func TestComputeProgress_Rounding(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	subs := []Subscription{
		{IbadahTypeID: a, TrackingType: constants.TrackingChecklist},
		{IbadahTypeID: b, TrackingType: constants.TrackingChecklist},
		{IbadahTypeID: c, TrackingType: constants.TrackingCount, Target: 2},
	}
	obs := []Observation{
		{IbadahTypeID: a, IsCompleted: true},
		{IbadahTypeID: c, CountValue: 2},
	}

	p := ComputeProgress(subs, obs)
	assert.Equal(t, 2, p.Completed)
	assert.Equal(t, 67, p.Percentage)
	assert.Equal(t, 33, Percentage(1, 3))
}

func TestIsCompleted(t *testing.T) {
	id := uuid.New()
	cases := []struct {
		name string
		sub  Subscription
		obs  *Observation
		want bool
	}{
		{"no observation", Subscription{IbadahTypeID: id, TrackingType: constants.TrackingChecklist}, nil, false},
		{"checklist false", Subscription{TrackingType: constants.TrackingChecklist}, &Observation{IsCompleted: false, CountValue: 9}, false},
		{"count ignores flag", Subscription{TrackingType: constants.TrackingCount, Target: 3}, &Observation{IsCompleted: true, CountValue: 1}, false},
		{"count meets target", Subscription{TrackingType: constants.TrackingCount, Target: 3}, &Observation{CountValue: 3}, true},
		{"count exceeds target", Subscription{TrackingType: constants.TrackingCount, Target: 3}, &Observation{CountValue: 10}, true},
		{"count zero target treated as one", Subscription{TrackingType: constants.TrackingCount, Target: 0}, &Observation{CountValue: 0}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsCompleted(tc.sub, tc.obs))
		})
	}
}

func TestComputeProgress_Idempotent(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	subs := []Subscription{
		{IbadahTypeID: a, TrackingType: constants.TrackingChecklist},
		{IbadahTypeID: b, TrackingType: constants.TrackingCount, Target: 4},
	}
	obs := []Observation{{IbadahTypeID: a, IsCompleted: true}, {IbadahTypeID: b, CountValue: 1}}

	first := ComputeProgress(subs, obs)
	second := ComputeProgress(subs, obs)
	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, first.Percentage, 0)
	assert.LessOrEqual(t, first.Percentage, 100)
}
