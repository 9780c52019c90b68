package progress

import (
	"time"

	"github.com/bhava-app/bhava/internal/domain"
)

// dayOf returns midnight of t's calendar day in loc.
func dayOf(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// nextStreak derives the streak after a check-in at now.
// No prior check-in starts at 1. Same calendar day keeps the streak.
// Exactly the next calendar day extends it. Any other gap, including a
// check-in dated before the previous one, restarts at 1.
func nextStreak(p domain.Progress, now time.Time, loc *time.Location) int {
	if p.LastCheckInDate == nil {
		return 1
	}
	last := dayOf(*p.LastCheckInDate, loc)
	today := dayOf(now, loc)

	switch {
	case today.Equal(last):
		return p.CurrentStreak
	case today.Equal(last.AddDate(0, 0, 1)):
		return p.CurrentStreak + 1
	default:
		return 1
	}
}
