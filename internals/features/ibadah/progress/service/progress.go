// internals/features/ibadah/progress/service/progress.go
package service

import (
	"math"

	"github.com/google/uuid"

	"ibadahku_backend/internals/constants"
)

// Subscription cukup field yang dibutuhkan untuk hitung progress.
type Subscription struct {
	IbadahTypeID uuid.UUID
	TrackingType string // checklist | count
	Target       int
}

// Observation = catatan ibadah satu hari untuk satu jenis.
type Observation struct {
	IbadahTypeID uuid.UUID
	IsCompleted  bool
	CountValue   int
}

type Progress struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// IsCompleted: checklist -> flag selesai, count -> nilai >= target.
// obs nil artinya belum dicatat.
func IsCompleted(sub Subscription, obs *Observation) bool {
	if obs == nil {
		return false
	}
	if sub.TrackingType == constants.TrackingCount {
		target := sub.Target
		if target < 1 {
			target = 1
		}
		return obs.CountValue >= target
	}
	return obs.IsCompleted
}

// IndexObservations map jenis ibadah -> catatan (catatan terakhir menang).
func IndexObservations(obs []Observation) map[uuid.UUID]*Observation {
	out := make(map[uuid.UUID]*Observation, len(obs))
	for i := range obs {
		out[obs[i].IbadahTypeID] = &obs[i]
	}
	return out
}

// ComputeProgress round(100 * selesai / total); 0 kalau tidak ada langganan.
func ComputeProgress(subs []Subscription, obs []Observation) Progress {
	idx := IndexObservations(obs)
	p := Progress{Total: len(subs)}
	for _, s := range subs {
		if IsCompleted(s, idx[s.IbadahTypeID]) {
			p.Completed++
		}
	}
	p.Percentage = Percentage(p.Completed, p.Total)
	return p
}

func Percentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}
