package dtr

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/dtr"
)

func TestAggregate_SumsEntriesInsidePeriod(t *testing.T) {
	entries := []dtr.DayLedgerEntry{
		{Date: "2025-01-07", TimeIn: "9:00 AM", TotalHours: 8.5, LateMinutes: 30, OvertimeHours: 1.25},
		{Date: "2025-01-06", TimeIn: "9:10 AM", TotalHours: 8.83, LateMinutes: 10, UndertimeMinutes: 45},
		{Date: "2025-01-08", IsLeave: true, Remarks: "Sick Leave"},
		{Date: "2025-01-09", IsAbsent: true},
		{Date: "2025-01-11", IsRestDay: true},
		{Date: "2025-01-05", TimeIn: "9:00 AM", TotalHours: 100, LateMinutes: 600},
		{Date: "bogus", TotalHours: 100},
	}

	totals := Aggregate(entries, period("2025-01-06", "2025-01-12"))

	assert.Equal(t, dtr.Totals{
		TotalHours:     17.33,
		TotalOvertime:  1.25,
		TotalLate:      0.67,
		TotalUndertime: 0.75,
		PresentDays:    2,
		AbsentDays:     1,
		LeaveDays:      1,
		RestDays:       1,
	}, totals)
}

func TestAggregate_RestDayWithPunchCountsAsPresent(t *testing.T) {
	totals := Aggregate([]dtr.DayLedgerEntry{
		{Date: "2025-01-11", IsRestDay: true, TimeIn: "10:00 AM", TimeOut: "2:00 PM", TotalHours: 4},
	}, period("2025-01-06", "2025-01-12"))

	assert.Equal(t, 1, totals.PresentDays)
	assert.Zero(t, totals.RestDays)
	assert.Equal(t, 4.0, totals.TotalHours)
}

func TestAggregate_Empty(t *testing.T) {
	assert.Equal(t, dtr.Totals{}, Aggregate(nil, period("2025-01-06", "2025-01-12")))
}
