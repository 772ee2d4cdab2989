package dtr

import (
	"time"

	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/cutoff"
)

const (
	RemarksRestDay         = "Rest Day"
	RemarksAbsent          = "Absent"
	RemarksPresent         = "Present"
	RemarksTimeAdjusted    = "Time Adjusted"
	ScheduleAdjustedSuffix = " (Schedule Adjusted)"
	WorkShiftRestDay       = "REST DAY"
	ScheduleTitleNone      = "No Schedule"
	DefaultSite            = "Onsite"
)

// Source tells whether a report was computed live or read from a saved snapshot.
type Source string

const (
	SourceComputed Source = "computed"
	SourceSaved    Source = "saved"
)

// DayLedgerEntry is one calendar day of a DTR. It is built by the skeleton generator,
// overlaid by the merger and annotated by the metrics calculator. It is never
// persisted except through a saved snapshot.
type DayLedgerEntry struct {
	Date               string  `json:"date"`
	Weekday            string  `json:"weekday"`
	UserID             string  `json:"user_id"`
	Site               string  `json:"site"`
	TimeIn             string  `json:"time_in"`
	TimeOut            string  `json:"time_out"`
	TotalHours         float64 `json:"total_hours"`
	Remarks            string  `json:"remarks"`
	IsRestDay          bool    `json:"is_rest_day"`
	IsAbsent           bool    `json:"is_absent"`
	IsLeave            bool    `json:"is_leave"`
	IsTimeAdjustment   bool    `json:"is_time_adjustment"`
	IsScheduleAdjusted bool    `json:"is_schedule_adjusted"`
	WorkShift          string  `json:"work_shift"`
	ScheduleTitle      string  `json:"schedule_title"`
	LeaveType          string  `json:"leave_type,omitempty"`
	LeaveID            string  `json:"leave_id,omitempty"`

	LateMinutes      int             `json:"late_minutes"`
	UndertimeMinutes int             `json:"undertime_minutes"`
	OvertimeHours    float64         `json:"overtime_hours"`
	Overtime         []OvertimeEntry `json:"overtime,omitempty"`
}

// OvertimeEntry is an approved overtime request with its hours computed once.
type OvertimeEntry struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	Date            string  `json:"date"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	AdditionalHours float64 `json:"additional_hours"`
}

// Totals is the footer of a DTR. Late and undertime are expressed in hours.
type Totals struct {
	TotalHours     float64 `json:"total_hours"`
	TotalOvertime  float64 `json:"total_overtime"`
	TotalLate      float64 `json:"total_late"`
	TotalUndertime float64 `json:"total_undertime"`
	PresentDays    int     `json:"present_days"`
	AbsentDays     int     `json:"absent_days"`
	LeaveDays      int     `json:"leave_days"`
	RestDays       int     `json:"rest_days"`
}

type Report struct {
	UserID      string                `json:"user_id"`
	Cutoff      cutoff.PeriodResponse `json:"cutoff"`
	Source      Source                `json:"source"`
	SnapshotID  string                `json:"snapshot_id,omitempty"`
	GeneratedAt string                `json:"generated_at"`
	Entries     []DayLedgerEntry      `json:"entries"`
	Totals      Totals                `json:"totals"`
}

// SavedEntry is one persisted ledger row of a snapshot. Times are stored as computed;
// reading them back normalizes them again.
type SavedEntry struct {
	SnapshotID string
	CutoffID   string
	SavedAt    time.Time
	Entry      DayLedgerEntry
}
