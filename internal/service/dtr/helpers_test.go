package dtr

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/cutoff"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/schedule"
)

const testUserID = "0198a1b2-0000-7000-8000-000000000001"

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func weekdaySchedule(id, title, in, out string) schedule.Definition {
	shift := schedule.Shift{In: in, Out: out}
	return schedule.Definition{
		ID:    id,
		Title: title,
		Shifts: map[string]schedule.Shift{
			"Monday":    shift,
			"Tuesday":   shift,
			"Wednesday": shift,
			"Thursday":  shift,
			"Friday":    shift,
		},
	}
}

func assignment(scheduleID, effective string, def schedule.Definition) schedule.Assignment {
	return schedule.Assignment{
		ID:              "assign-" + scheduleID + "-" + effective,
		UserID:          testUserID,
		ScheduleID:      scheduleID,
		EffectivityDate: date(effective),
		Definition:      def,
	}
}

// officeResolver is a Mon-Fri 09:00-18:00 schedule effective 2025-01-01.
func officeResolver() *Resolver {
	return NewResolver([]schedule.Assignment{
		assignment("sched-office", "2025-01-01", weekdaySchedule("sched-office", "Office Hours", "09:00", "18:00")),
	})
}

func period(start, end string) cutoff.Period {
	return cutoff.Period{ID: cutoffID(start), StartDate: date(start), EndDate: date(end)}
}

// cutoffID derives a stable UUIDv7-shaped id from a cutoff's start date.
func cutoffID(start string) string {
	return "0198a1b2-0000-7000-8000-0000" + strings.ReplaceAll(start, "-", "")
}
