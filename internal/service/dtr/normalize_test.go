package dtr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/dtr"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/overtime"
)

func TestNormalizeAttendance(t *testing.T) {
	records := NormalizeAttendance([]attendance.Punch{
		{UserID: testUserID, Date: date("2025-01-06"), TimeIn: "09:10", TimeOut: "18:00:00", Remarks: "Late", Site: "HQ"},
		{UserID: testUserID, Date: date("2025-01-07"), TimeIn: "8:00 AM"},
	})
	require.Len(t, records, 2)

	first := records[0].(AttendanceRecord)
	assert.Equal(t, "2025-01-06", first.Day())
	assert.Equal(t, "Monday", first.Weekday)
	assert.Equal(t, "9:10 AM", first.TimeIn)
	assert.Equal(t, "6:00 PM", first.TimeOut)
	assert.Equal(t, 8.83, first.TotalHours)
	assert.Equal(t, "Late", first.Remarks)
	assert.Equal(t, "HQ", first.Site)

	open := records[1].(AttendanceRecord)
	assert.Equal(t, "8:00 AM", open.TimeIn)
	assert.Equal(t, "", open.TimeOut)
	assert.Zero(t, open.TotalHours)
	assert.Equal(t, dtr.RemarksPresent, open.Remarks)
	assert.Equal(t, dtr.DefaultSite, open.Site)
}

func TestNormalizeAttendance_MalformedTimeYieldsZeroHours(t *testing.T) {
	records := NormalizeAttendance([]attendance.Punch{
		{UserID: testUserID, Date: date("2025-01-06"), TimeIn: "garbage", TimeOut: "18:00"},
	})
	require.Len(t, records, 1)

	r := records[0].(AttendanceRecord)
	assert.Equal(t, "", r.TimeIn)
	assert.Zero(t, r.TotalHours)
}

func TestNormalizeTimeAdjustments_KeepsApprovedAndUnset(t *testing.T) {
	records := NormalizeTimeAdjustments([]attendance.TimeAdjustment{
		{ID: "ta-1", UserID: testUserID, Date: date("2025-01-06"), TimeIn: "08:00", TimeOut: "17:00", Status: "Approved"},
		{ID: "ta-2", UserID: testUserID, Date: date("2025-01-07"), TimeIn: "08:00", TimeOut: "17:00", Status: "pending"},
		{ID: "ta-3", UserID: testUserID, Date: date("2025-01-08"), TimeIn: "08:00", TimeOut: "17:00"},
		{ID: "ta-4", UserID: testUserID, Date: date("2025-01-09"), TimeIn: "08:00", TimeOut: "17:00", Status: "rejected"},
	})
	require.Len(t, records, 2)
	assert.Equal(t, "2025-01-06", records[0].Day())
	assert.Equal(t, "2025-01-08", records[1].Day())

	r := records[0].(TimeAdjustmentRecord)
	assert.Equal(t, "Monday", r.Weekday)
	assert.Equal(t, 9.0, r.TotalHours)

	var e dtr.DayLedgerEntry
	r.Apply(&e)
	assert.Equal(t, dtr.RemarksTimeAdjusted, e.Remarks)
	assert.True(t, e.IsTimeAdjustment)
	assert.Equal(t, "8:00 AM", e.TimeIn)
}

func TestNormalizeOvertime_ComputesHoursOnce(t *testing.T) {
	entries := NormalizeOvertime([]overtime.Request{
		{ID: "ot-1", UserID: testUserID, Date: date("2025-01-06"), StartTime: "18:00", EndTime: "20:30", Status: "approved"},
		{ID: "ot-2", UserID: testUserID, Date: date("2025-01-07"), StartTime: "22:00", EndTime: "01:00", Status: "pending"},
	})
	require.Len(t, entries, 2)

	assert.Equal(t, 2.5, entries[0].AdditionalHours)
	assert.Equal(t, "6:00 PM", entries[0].StartTime)
	assert.Equal(t, "2025-01-06", entries[0].Date)
	assert.Equal(t, 3.0, entries[1].AdditionalHours, "overnight overtime wraps past midnight")
}

func TestNormalizeSaved_SortsAndReformats(t *testing.T) {
	saved := time.Date(2025, 1, 11, 8, 0, 0, 0, time.UTC)
	entries := NormalizeSaved([]dtr.SavedEntry{
		{SnapshotID: "snap", SavedAt: saved, Entry: dtr.DayLedgerEntry{Date: "2025-01-06", TimeIn: "09:10", TimeOut: "18:00"}},
		{SnapshotID: "snap", SavedAt: saved, Entry: dtr.DayLedgerEntry{Date: "2025-01-08", Weekday: "Wednesday", LateMinutes: -5}},
	})
	require.Len(t, entries, 2)

	assert.Equal(t, "2025-01-08", entries[0].Date)
	assert.Zero(t, entries[0].LateMinutes)

	assert.Equal(t, "Monday", entries[1].Weekday)
	assert.Equal(t, "9:10 AM", entries[1].TimeIn)
	assert.Equal(t, "6:00 PM", entries[1].TimeOut)
}
