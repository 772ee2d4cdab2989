package dtr

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/approval"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dtr-go/internal/pkg/clock"
)

// ExpandLeave emits one record per working day of every approved leave. Rest days inside
// a leave range produce no record.
func ExpandLeave(requests []leave.Request, r *Resolver) []DayRecord {
	var records []DayRecord
	for _, req := range requests {
		if !approval.IsApproved(req.Status) {
			continue
		}

		remarks := leaveRemarks(req.Type)
		clock.EachDay(req.StartDate, req.EndDate, func(day time.Time) {
			if r.ShiftFor(day).IsRestDay() {
				return
			}
			records = append(records, LeaveRecord{
				Date:      clock.FormatDate(day),
				Remarks:   remarks,
				LeaveType: req.Type,
				LeaveID:   req.ID,
			})
		})
	}
	return records
}

// leaveRemarks turns "sick" into "Sick Leave".
func leaveRemarks(leaveType string) string {
	leaveType = strings.TrimSpace(leaveType)
	if leaveType == "" {
		return "Leave"
	}
	first, size := utf8.DecodeRuneInString(leaveType)
	return string(unicode.ToUpper(first)) + leaveType[size:] + " Leave"
}
