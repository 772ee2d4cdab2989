package dtr

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/cutoff"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/dtr"
	"github.com/cmlabs-hris/hris-dtr-go/internal/pkg/clock"
)

// GenerateSkeleton produces one placeholder entry per calendar day of the period. Each
// day starts either as a rest day or as absent, never both.
func GenerateSkeleton(userID string, period cutoff.Period, r *Resolver) []dtr.DayLedgerEntry {
	entries := make([]dtr.DayLedgerEntry, 0, period.Days())

	clock.EachDay(period.StartDate, period.EndDate, func(day time.Time) {
		entries = append(entries, dayEntry(userID, day, r))
	})

	return entries
}

// dayEntry is the placeholder of one day under the schedule in effect on it.
func dayEntry(userID string, day time.Time, r *Resolver) dtr.DayLedgerEntry {
	res := r.ShiftFor(day)
	entry := dtr.DayLedgerEntry{
		Date:          clock.FormatDate(day),
		Weekday:       day.Weekday().String(),
		UserID:        userID,
		ScheduleTitle: res.Title(),
	}

	if res.IsRestDay() {
		entry.IsRestDay = true
		entry.Remarks = dtr.RemarksRestDay
		entry.WorkShift = dtr.WorkShiftRestDay
	} else {
		entry.IsAbsent = true
		entry.Remarks = dtr.RemarksAbsent
		entry.WorkShift = formatShift(res.Shift.In, res.Shift.Out)
	}
	return entry
}

// formatShift renders "9:00 AM - 6:00 PM". Values that do not parse are shown as stored.
func formatShift(in, out string) string {
	return displayTime(in) + " - " + displayTime(out)
}

func displayTime(value string) string {
	if formatted := clock.To12Hour(value); formatted != "" {
		return formatted
	}
	return strings.TrimSpace(value)
}
