package cutoff

import (
	"time"

	"github.com/cmlabs-hris/hris-dtr-go/internal/pkg/clock"
)

// Period is a pay-period window. Both ends are inclusive calendar dates.
type Period struct {
	ID        string
	StartDate time.Time
	EndDate   time.Time
}

// Contains reports whether date falls within the period.
func (p Period) Contains(date time.Time) bool {
	d := clock.Day(date)
	return !d.Before(clock.Day(p.StartDate)) && !d.After(clock.Day(p.EndDate))
}

// Days returns the number of calendar days in the period.
func (p Period) Days() int {
	if p.EndDate.Before(p.StartDate) {
		return 0
	}
	return int(clock.Day(p.EndDate).Sub(clock.Day(p.StartDate)).Hours()/24) + 1
}

// Latest returns the most-recently-starting period, the default selection.
func Latest(periods []Period) (Period, bool) {
	if len(periods) == 0 {
		return Period{}, false
	}

	latest := periods[0]
	for _, p := range periods[1:] {
		if p.StartDate.After(latest.StartDate) {
			latest = p
		}
	}
	return latest, true
}
