package dtr

import (
	"github.com/shopspring/decimal"

	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/cutoff"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/dtr"
	"github.com/cmlabs-hris/hris-dtr-go/internal/pkg/clock"
)

var minutesPerHour = decimal.NewFromInt(60)

// Aggregate sums the entries dated inside period. Entries outside it, or with an
// unreadable date, are ignored.
func Aggregate(entries []dtr.DayLedgerEntry, period cutoff.Period) dtr.Totals {
	var (
		totals    dtr.Totals
		hours     = decimal.Zero
		overtime  = decimal.Zero
		late      = decimal.Zero
		undertime = decimal.Zero
	)

	for _, e := range entries {
		day, err := clock.ParseDate(e.Date)
		if err != nil || !period.Contains(day) {
			continue
		}

		hours = hours.Add(decimal.NewFromFloat(e.TotalHours))
		overtime = overtime.Add(decimal.NewFromFloat(e.OvertimeHours))
		late = late.Add(decimal.NewFromInt(int64(e.LateMinutes)).Div(minutesPerHour))
		undertime = undertime.Add(decimal.NewFromInt(int64(e.UndertimeMinutes)).Div(minutesPerHour))

		switch {
		case e.IsLeave:
			totals.LeaveDays++
		case e.IsAbsent:
			totals.AbsentDays++
		case e.TimeIn != "" || e.TimeOut != "":
			totals.PresentDays++
		case e.IsRestDay:
			totals.RestDays++
		}
	}

	totals.TotalHours = clock.RoundHours(hours)
	totals.TotalOvertime = clock.RoundHours(overtime)
	totals.TotalLate = clock.RoundHours(late)
	totals.TotalUndertime = clock.RoundHours(undertime)
	return totals
}
