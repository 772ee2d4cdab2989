package dtr

import (
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/approval"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/cutoff"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/dtr"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/schedule"
)

// Sources are the raw records of one user for one cutoff, as fetched from storage.
type Sources struct {
	Punches             []attendance.Punch
	TimeAdjustments     []attendance.TimeAdjustment
	Leaves              []leave.Request
	ScheduleAdjustments []schedule.Adjustment
	Overtime            []overtime.Request
	Assignments         []schedule.Assignment
}

// ComputeDTR runs the whole pipeline: skeleton, overlays, metrics, totals. It is pure;
// the same sources always give the same report.
func ComputeDTR(userID string, period cutoff.Period, src Sources) dtr.Report {
	resolver := NewResolver(src.Assignments)
	adjustments := ApprovedScheduleAdjustments(userID, src.ScheduleAdjustments)

	skeleton := GenerateSkeleton(userID, period, resolver)
	entries := Merge(userID, resolver, skeleton, Layers{
		LayerAttendance:     NormalizeAttendance(src.Punches),
		LayerTimeAdjustment: NormalizeTimeAdjustments(src.TimeAdjustments),
		LayerLeave:          ExpandLeave(src.Leaves, resolver),
	}, adjustments)
	ApplyMetrics(entries, userID, resolver, adjustments, NormalizeOvertime(src.Overtime))

	return dtr.Report{
		UserID:  userID,
		Cutoff:  cutoff.NewPeriodResponse(period),
		Source:  dtr.SourceComputed,
		Entries: entries,
		Totals:  Aggregate(entries, period),
	}
}

// ApprovedScheduleAdjustments keeps the approved adjustments of userID in their
// original order.
func ApprovedScheduleAdjustments(userID string, adjustments []schedule.Adjustment) []schedule.Adjustment {
	approved := make([]schedule.Adjustment, 0, len(adjustments))
	for _, adj := range adjustments {
		if adj.UserID == userID && approval.IsApproved(adj.Status) {
			approved = append(approved, adj)
		}
	}
	return approved
}
