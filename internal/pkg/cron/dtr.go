package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/cutoff"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/dtr"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/schedule"
	"github.com/cmlabs-hris/hris-dtr-go/internal/pkg/clock"
)

type DTRJobs struct {
	cutoffRepo     cutoff.Repository
	assignmentRepo schedule.AssignmentRepository
	dtrService     dtr.Service
	snapshotHour   int
	now            func() time.Time
}

func NewDTRJobs(
	cutoffRepo cutoff.Repository,
	assignmentRepo schedule.AssignmentRepository,
	dtrService dtr.Service,
	snapshotHour int,
) *DTRJobs {
	return &DTRJobs{
		cutoffRepo:     cutoffRepo,
		assignmentRepo: assignmentRepo,
		dtrService:     dtrService,
		snapshotHour:   snapshotHour,
		now:            time.Now,
	}
}

func (j *DTRJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("snapshot_closed_cutoffs", interval, j.SnapshotClosedCutoffs)
}

// SnapshotClosedCutoffs saves the DTR of every scheduled user for each cutoff that
// ended yesterday. It only does work during the configured UTC hour.
func (j *DTRJobs) SnapshotClosedCutoffs(ctx context.Context) error {
	now := j.now().UTC()
	if now.Hour() != j.snapshotHour {
		return nil
	}

	yesterday := clock.Day(now).AddDate(0, 0, -1)

	periods, err := j.cutoffRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list cutoff periods: %w", err)
	}

	var saved, failed int
	for _, period := range periods {
		if !clock.Day(period.EndDate).Equal(yesterday) {
			continue
		}

		slog.Info("Cron: snapshotting closed cutoff", "cutoff_id", period.ID, "end_date", clock.FormatDate(period.EndDate))

		userIDs, err := j.assignmentRepo.ListAssignedUserIDs(ctx, period.EndDate)
		if err != nil {
			return fmt.Errorf("failed to list scheduled users for cutoff %s: %w", period.ID, err)
		}

		for _, userID := range userIDs {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, err := j.dtrService.Snapshot(ctx, userID, period); err != nil {
				slog.Error("Cron: failed to snapshot DTR", "cutoff_id", period.ID, "user_id", userID, "error", err)
				failed++
				continue
			}
			saved++
		}
	}

	slog.Info("Cron: DTR snapshot job finished", "saved", saved, "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d DTR snapshots failed", failed, saved+failed)
	}
	return nil
}
