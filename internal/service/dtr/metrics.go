package dtr

import (
	"github.com/shopspring/decimal"

	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/approval"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/dtr"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/schedule"
	"github.com/cmlabs-hris/hris-dtr-go/internal/pkg/clock"
)

// ApplyMetrics annotates every entry with late minutes, undertime minutes and the
// approved overtime of its day. Adjustments must already be filtered to approved ones.
func ApplyMetrics(entries []dtr.DayLedgerEntry, userID string, r *Resolver, adjustments []schedule.Adjustment, overtime []dtr.OvertimeEntry) {
	for i := range entries {
		e := &entries[i]
		e.LateMinutes, e.UndertimeMinutes = lateAndUndertime(*e, userID, r, adjustments)

		e.Overtime = overtimeOn(e.Date, userID, overtime)
		total := decimal.Zero
		for _, ot := range e.Overtime {
			total = total.Add(decimal.NewFromFloat(ot.AdditionalHours))
		}
		e.OvertimeHours = clock.RoundHours(total)
	}
}

func lateAndUndertime(e dtr.DayLedgerEntry, userID string, r *Resolver, adjustments []schedule.Adjustment) (late, undertime int) {
	if e.IsLeave || e.IsRestDay {
		return 0, 0
	}

	shift, ok := effectiveShift(e.Date, userID, r, adjustments)
	if !ok {
		return 0, 0
	}

	if e.TimeIn != "" {
		if m, ok := clock.MinutesBetween(e.TimeIn, shift.In); ok && m > 0 {
			late = m
		}
	}
	if e.TimeOut != "" {
		if m, ok := clock.MinutesBetween(shift.Out, e.TimeOut); ok && m > 0 {
			undertime = m
		}
	}
	return late, undertime
}

// effectiveShift prefers the last approved schedule adjustment of the day over the
// assigned schedule.
func effectiveShift(date, userID string, r *Resolver, adjustments []schedule.Adjustment) (schedule.Shift, bool) {
	for i := len(adjustments) - 1; i >= 0; i-- {
		adj := adjustments[i]
		if adj.UserID == userID && clock.FormatDate(adj.Date) == date {
			return schedule.Shift{In: adj.TimeIn, Out: adj.TimeOut}, true
		}
	}

	day, err := clock.ParseDate(date)
	if err != nil {
		return schedule.Shift{}, false
	}
	res := r.ShiftFor(day)
	if res.Shift == nil {
		return schedule.Shift{}, false
	}
	return *res.Shift, true
}

func overtimeOn(date, userID string, overtime []dtr.OvertimeEntry) []dtr.OvertimeEntry {
	var matched []dtr.OvertimeEntry
	for _, ot := range overtime {
		if ot.Date == date && ot.UserID == userID && approval.IsApproved(ot.Status) {
			matched = append(matched, ot)
		}
	}
	return matched
}
