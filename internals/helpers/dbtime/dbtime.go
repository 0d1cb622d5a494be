// file: internals/helpers/dbtime/dbtime.go
package dbtime

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

// DateLayout format tanggal sipil yang dipakai di query & kolom DATE.
const DateLayout = "2006-01-02"

const fallbackTimezone = "Asia/Jakarta"

var locCache sync.Map // name -> *time.Location

// Location load timezone (cache per nama); fallback Asia/Jakarta lalu UTC.
func Location(name string) *time.Location {
	name = strings.TrimSpace(name)
	if name == "" {
		name = fallbackTimezone
	}
	if v, ok := locCache.Load(name); ok {
		return v.(*time.Location)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		if name != fallbackTimezone {
			return Location(fallbackTimezone)
		}
		loc = time.UTC
	}
	locCache.Store(name, loc)
	return loc
}

// DateOf normalisasi t ke tanggal sipil (00:00 UTC) menurut loc.
func DateOf(t time.Time, loc *time.Location) time.Time {
	if loc != nil {
		t = t.In(loc)
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today tanggal hari ini di timezone loc.
func Today(loc *time.Location) time.Time {
	return DateOf(time.Now(), loc)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("tanggal %q harus berformat YYYY-MM-DD", s)
	}
	return t, nil
}

func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysBetween selisih hari kalender (to - from).
func DaysBetween(from, to time.Time) int {
	f := DateOf(from, nil)
	t := DateOf(to, nil)
	return int(t.Sub(f).Hours() / 24)
}

// DateRange semua tanggal from..to (inklusif); kosong kalau from > to.
func DateRange(from, to time.Time) []time.Time {
	from, to = DateOf(from, nil), DateOf(to, nil)
	if from.After(to) {
		return nil
	}
	out := make([]time.Time, 0, DaysBetween(from, to)+1)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}

// QueryDate baca ?name=YYYY-MM-DD; kosong -> hari ini (loc).
func QueryDate(c *fiber.Ctx, name string, loc *time.Location) (time.Time, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return Today(loc), nil
	}
	d, err := ParseDate(raw)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return d, nil
}

// QueryRange baca ?from=&to=; default defaultDays terakhir s/d hari ini, maksimal maxDays.
func QueryRange(c *fiber.Ctx, loc *time.Location, defaultDays, maxDays int) (time.Time, time.Time, error) {
	to, err := QueryDate(c, "to", loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	from := to.AddDate(0, 0, -(defaultDays - 1))
	if raw := strings.TrimSpace(c.Query("from")); raw != "" {
		if from, err = ParseDate(raw); err != nil {
			return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "from tidak boleh setelah to")
	}
	if maxDays > 0 && DaysBetween(from, to)+1 > maxDays {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("rentang maksimal %d hari", maxDays))
	}
	return from, to, nil
}
