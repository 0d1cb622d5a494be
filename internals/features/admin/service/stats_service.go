package service

import (
	"context"
	"math"
	"time"

	"gorm.io/gorm"

	"ibadahku_backend/internals/constants"
	recordService "ibadahku_backend/internals/features/ibadah/records/service"
	muhasabahService "ibadahku_backend/internals/features/muhasabah/service"
	supportService "ibadahku_backend/internals/features/support/service"
	userService "ibadahku_backend/internals/features/users/user/service"
)

type Stats struct {
	TotalUsers        int64 `json:"total_users"`
	ActiveUsers       int64 `json:"active_users"`
	AdminUsers        int64 `json:"admin_users"`
	NewUsersThisMonth int64 `json:"new_users_this_month"`
	NewUsersLastMonth int64 `json:"new_users_last_month"`
	GrowthPercentage  int   `json:"growth_percentage"`
	RecordsToday      int64 `json:"records_today"`
	MuhasabahToday    int64 `json:"muhasabah_today"`
	OpenTickets       int64 `json:"open_tickets"`
}

// GrowthPercentage (cur-prev)/prev dalam persen, dibulatkan.
// prev = 0 → 100 kalau ada user baru, selain itu 0.
func GrowthPercentage(cur, prev int64) int {
	if prev == 0 {
		if cur > 0 {
			return 100
		}
		return 0
	}
	return int(math.Round(float64(cur-prev) / float64(prev) * 100))
}

// MonthBounds awal bulan ini dan awal bulan lalu di timezone loc.
func MonthBounds(now time.Time, loc *time.Location) (thisMonth, lastMonth time.Time) {
	now = now.In(loc)
	thisMonth = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	lastMonth = thisMonth.AddDate(0, -1, 0)
	return thisMonth, lastMonth
}

// Collect today = tanggal sipil (lihat dbtime.Today), now = jam sekarang di loc.
func Collect(ctx context.Context, db *gorm.DB, today, now time.Time, loc *time.Location) (*Stats, error) {
	counts, err := userService.CountAll(ctx, db)
	if err != nil {
		return nil, err
	}
	s := &Stats{
		TotalUsers:  counts.Total,
		ActiveUsers: counts.Active,
		AdminUsers:  counts.Admins,
	}

	thisMonth, lastMonth := MonthBounds(now, loc)
	if s.NewUsersThisMonth, err = userService.CountCreatedBetween(ctx, db, thisMonth, thisMonth.AddDate(0, 1, 0)); err != nil {
		return nil, err
	}
	if s.NewUsersLastMonth, err = userService.CountCreatedBetween(ctx, db, lastMonth, thisMonth); err != nil {
		return nil, err
	}
	s.GrowthPercentage = GrowthPercentage(s.NewUsersThisMonth, s.NewUsersLastMonth)

	if s.RecordsToday, err = recordService.CountOnDate(ctx, db, today); err != nil {
		return nil, err
	}
	if s.MuhasabahToday, err = muhasabahService.CountOnDate(ctx, db, today); err != nil {
		return nil, err
	}
	if s.OpenTickets, err = supportService.CountByStatus(ctx, db, constants.SupportOpen); err != nil {
		return nil, err
	}
	return s, nil
}
