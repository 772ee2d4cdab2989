package dtr

import (
	"slices"
	"sort"
	"time"

	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/dtr"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/schedule"
	"github.com/cmlabs-hris/hris-dtr-go/internal/pkg/clock"
)

// Resolver answers "which schedule is in effect on this date" for one employee. It is
// the single place the skeleton, leave expansion and metrics resolve schedules.
type Resolver struct {
	// newest effectivity date first; equal dates ordered by schedule ID, greatest first
	assignments []schedule.Assignment
}

// Resolution is the schedule and shift in effect on one date. Shift is nil on a rest
// day, including days no assignment covers.
type Resolution struct {
	Assignment *schedule.Assignment
	Shift      *schedule.Shift
}

func NewResolver(assignments []schedule.Assignment) *Resolver {
	sorted := slices.Clone(assignments)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.EffectivityDate.Equal(b.EffectivityDate) {
			return a.EffectivityDate.After(b.EffectivityDate)
		}
		return a.ScheduleID > b.ScheduleID
	})
	return &Resolver{assignments: sorted}
}

// Resolve returns the latest assignment effective on or before date, or nil.
func (r *Resolver) Resolve(date time.Time) *schedule.Assignment {
	day := clock.Day(date)
	for i := range r.assignments {
		if !clock.Day(r.assignments[i].EffectivityDate).After(day) {
			return &r.assignments[i]
		}
	}
	return nil
}

// ShiftFor resolves the assignment for date and looks up that weekday's shift.
func (r *Resolver) ShiftFor(date time.Time) Resolution {
	assignment := r.Resolve(date)
	if assignment == nil {
		return Resolution{}
	}

	shift, ok := assignment.Definition.ShiftOn(date.Weekday())
	if !ok {
		return Resolution{Assignment: assignment}
	}
	return Resolution{Assignment: assignment, Shift: &shift}
}

func (res Resolution) IsRestDay() bool {
	return res.Shift == nil
}

// Title is the schedule title shown on the ledger.
func (res Resolution) Title() string {
	if res.Assignment == nil {
		return dtr.ScheduleTitleNone
	}
	return res.Assignment.Definition.Title
}
