package dtr

import (
	"sort"
	"strings"

	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/approval"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/dtr"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-dtr-go/internal/pkg/clock"
)

// DayRecord is a normalized source record that overlays one ledger day. Apply
// overwrites only the fields the record carries.
type DayRecord interface {
	Day() string
	Apply(entry *dtr.DayLedgerEntry)
}

// AttendanceRecord is a normalized clock-in/clock-out punch.
type AttendanceRecord struct {
	Date       string
	Weekday    string
	UserID     string
	Site       string
	TimeIn     string
	TimeOut    string
	TotalHours float64
	Remarks    string
	IsRestDay  bool
}

func (r AttendanceRecord) Day() string { return r.Date }

func (r AttendanceRecord) Apply(e *dtr.DayLedgerEntry) {
	if r.Weekday != "" {
		e.Weekday = r.Weekday
	}
	if r.UserID != "" {
		e.UserID = r.UserID
	}
	if r.Site != "" {
		e.Site = r.Site
	}
	e.TimeIn = r.TimeIn
	e.TimeOut = r.TimeOut
	e.TotalHours = r.TotalHours
	e.Remarks = r.Remarks
	e.IsRestDay = r.IsRestDay
}

// TimeAdjustmentRecord is a normalized approved time adjustment.
type TimeAdjustmentRecord struct {
	Date       string
	Weekday    string
	UserID     string
	TimeIn     string
	TimeOut    string
	TotalHours float64
}

func (r TimeAdjustmentRecord) Day() string { return r.Date }

func (r TimeAdjustmentRecord) Apply(e *dtr.DayLedgerEntry) {
	if r.Weekday != "" {
		e.Weekday = r.Weekday
	}
	if r.UserID != "" {
		e.UserID = r.UserID
	}
	e.TimeIn = r.TimeIn
	e.TimeOut = r.TimeOut
	e.TotalHours = r.TotalHours
	e.Remarks = dtr.RemarksTimeAdjusted
	e.IsTimeAdjustment = true
}

// LeaveRecord is one working day of an approved leave.
type LeaveRecord struct {
	Date      string
	Remarks   string
	LeaveType string
	LeaveID   string
}

func (r LeaveRecord) Day() string { return r.Date }

func (r LeaveRecord) Apply(e *dtr.DayLedgerEntry) {
	e.Remarks = r.Remarks
	e.IsLeave = true
	e.LeaveType = r.LeaveType
	e.LeaveID = r.LeaveID
}

// NormalizeAttendance converts punches to day records with 12-hour times and hours worked.
func NormalizeAttendance(punches []attendance.Punch) []DayRecord {
	records := make([]DayRecord, 0, len(punches))
	for _, p := range punches {
		remarks := strings.TrimSpace(p.Remarks)
		if remarks == "" {
			remarks = dtr.RemarksPresent
		}
		site := strings.TrimSpace(p.Site)
		if site == "" {
			site = dtr.DefaultSite
		}

		records = append(records, AttendanceRecord{
			Date:       clock.FormatDate(p.Date),
			Weekday:    p.Date.Weekday().String(),
			UserID:     p.UserID,
			Site:       site,
			TimeIn:     clock.To12Hour(p.TimeIn),
			TimeOut:    clock.To12Hour(p.TimeOut),
			TotalHours: workedHours(p.TimeOut, p.TimeIn),
			Remarks:    remarks,
			IsRestDay:  p.IsRestDay,
		})
	}
	return records
}

// NormalizeTimeAdjustments converts admitted time adjustments to day records. A record
// without a status is taken as already approved by the backend.
func NormalizeTimeAdjustments(adjustments []attendance.TimeAdjustment) []DayRecord {
	records := make([]DayRecord, 0, len(adjustments))
	for _, a := range adjustments {
		if strings.TrimSpace(a.Status) != "" && !approval.IsApproved(a.Status) {
			continue
		}

		records = append(records, TimeAdjustmentRecord{
			Date:       clock.FormatDate(a.Date),
			Weekday:    a.Date.Weekday().String(),
			UserID:     a.UserID,
			TimeIn:     clock.To12Hour(a.TimeIn),
			TimeOut:    clock.To12Hour(a.TimeOut),
			TotalHours: workedHours(a.TimeOut, a.TimeIn),
		})
	}
	return records
}

// NormalizeOvertime computes each request's additional hours once. Status filtering
// happens per day in the metrics calculator.
func NormalizeOvertime(requests []overtime.Request) []dtr.OvertimeEntry {
	entries := make([]dtr.OvertimeEntry, 0, len(requests))
	for _, r := range requests {
		entries = append(entries, dtr.OvertimeEntry{
			ID:              r.ID,
			UserID:          r.UserID,
			Date:            clock.FormatDate(r.Date),
			StartTime:       clock.To12Hour(r.StartTime),
			EndTime:         clock.To12Hour(r.EndTime),
			Reason:          r.Reason,
			Status:          r.Status,
			AdditionalHours: clock.HoursBetween(r.EndTime, r.StartTime),
		})
	}
	return entries
}

// NormalizeSaved turns stored snapshot rows back into ledger entries, most recent first.
func NormalizeSaved(rows []dtr.SavedEntry) []dtr.DayLedgerEntry {
	entries := make([]dtr.DayLedgerEntry, 0, len(rows))
	for _, row := range rows {
		e := row.Entry
		if e.Weekday == "" {
			e.Weekday = clock.WeekdayName(e.Date)
		}
		if e.TimeIn != "" {
			e.TimeIn = displayTime(e.TimeIn)
		}
		if e.TimeOut != "" {
			e.TimeOut = displayTime(e.TimeOut)
		}
		if e.LateMinutes < 0 {
			e.LateMinutes = 0
		}
		if e.UndertimeMinutes < 0 {
			e.UndertimeMinutes = 0
		}
		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})
	return entries
}

func workedHours(out, in string) float64 {
	if strings.TrimSpace(out) == "" || strings.TrimSpace(in) == "" {
		return 0
	}
	return clock.HoursBetween(out, in)
}
