package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGrowthPercentage(t *testing.T) {
	cases := []struct {
		name      string
		cur, prev int64
		want      int
	}{
		{"naik", 15, 10, 50},
		{"turun", 5, 10, -50},
		{"tetap", 10, 10, 0},
		{"bulan lalu kosong", 3, 0, 100},
		{"dua-duanya kosong", 0, 0, 0},
		{"pembulatan", 2, 3, -33},
		{"pembulatan ke atas", 5, 3, 67},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GrowthPercentage(tc.cur, tc.prev))
		})
	}
}

func TestMonthBounds(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)

	// 31 Jan 20:00 UTC sudah 1 Feb di WIB
	now := time.Date(2025, time.January, 31, 20, 0, 0, 0, time.UTC)
	this, last := MonthBounds(now, loc)
	assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, loc), this)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, loc), last)

	now = time.Date(2025, time.January, 10, 12, 0, 0, 0, loc)
	this, last = MonthBounds(now, loc)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, loc), this)
	assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, loc), last)
}
