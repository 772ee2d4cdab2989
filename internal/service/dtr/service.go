package dtr

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/cutoff"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/dtr"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/schedule"
	"github.com/cmlabs-hris/hris-dtr-go/internal/pkg/generation"
)

type DTRServiceImpl struct {
	punchRepo              attendance.PunchRepository
	timeAdjustmentRepo     attendance.TimeAdjustmentRepository
	leaveRepo              leave.RequestRepository
	scheduleAdjustmentRepo schedule.AdjustmentRepository
	overtimeRepo           overtime.RequestRepository
	assignmentRepo         schedule.AssignmentRepository
	cutoffRepo             cutoff.Repository
	savedRepo              dtr.SavedRepository
	tracker                *generation.Tracker
	now                    func() time.Time
}

func NewDTRService(
	punchRepo attendance.PunchRepository,
	timeAdjustmentRepo attendance.TimeAdjustmentRepository,
	leaveRepo leave.RequestRepository,
	scheduleAdjustmentRepo schedule.AdjustmentRepository,
	overtimeRepo overtime.RequestRepository,
	assignmentRepo schedule.AssignmentRepository,
	cutoffRepo cutoff.Repository,
	savedRepo dtr.SavedRepository,
	tracker *generation.Tracker,
) dtr.Service {
	return &DTRServiceImpl{
		punchRepo:              punchRepo,
		timeAdjustmentRepo:     timeAdjustmentRepo,
		leaveRepo:              leaveRepo,
		scheduleAdjustmentRepo: scheduleAdjustmentRepo,
		overtimeRepo:           overtimeRepo,
		assignmentRepo:         assignmentRepo,
		cutoffRepo:             cutoffRepo,
		savedRepo:              savedRepo,
		tracker:                tracker,
		now:                    time.Now,
	}
}

// Compute implements dtr.Service.
func (s *DTRServiceImpl) Compute(ctx context.Context, req dtr.ReportRequest) (dtr.Report, error) {
	return s.compute(ctx, req, "view")
}

// Export implements dtr.Service. Exports are tracked apart from on-screen views so
// downloading a file does not cancel the report being looked at.
func (s *DTRServiceImpl) Export(ctx context.Context, req dtr.ReportRequest) (dtr.Report, error) {
	return s.compute(ctx, req, "export")
}

// compute runs the pipeline for the caller. A newer run by the same caller and purpose
// supersedes this one, which then returns dtr.ErrSupersededRun instead of a stale report.
func (s *DTRServiceImpl) compute(ctx context.Context, req dtr.ReportRequest, purpose string) (dtr.Report, error) {
	if err := req.Validate(); err != nil {
		return dtr.Report{}, err
	}

	viewer, err := auth.ViewerFromContext(ctx)
	if err != nil {
		return dtr.Report{}, err
	}

	userID, err := targetUser(viewer, req.UserID)
	if err != nil {
		return dtr.Report{}, err
	}

	period, err := s.selectCutoff(ctx, req.CutoffID)
	if err != nil {
		return dtr.Report{}, err
	}

	runCtx, run := s.tracker.Begin(ctx, purpose+":"+viewer.UserID)
	defer run.Done()

	sources, err := s.fetchSources(runCtx, userID, period)
	if err != nil {
		if errors.Is(context.Cause(runCtx), generation.ErrSuperseded) {
			return dtr.Report{}, dtr.ErrSupersededRun
		}
		return dtr.Report{}, err
	}

	report := ComputeDTR(userID, period, sources)
	if !run.Current() {
		slog.Info("Discarding superseded DTR run", "viewer_id", viewer.UserID, "user_id", userID, "seq", run.Seq())
		return dtr.Report{}, dtr.ErrSupersededRun
	}

	report.GeneratedAt = s.now().UTC().Format(time.RFC3339)
	return report, nil
}

// Save implements dtr.Service.
func (s *DTRServiceImpl) Save(ctx context.Context, req dtr.ReportRequest) (dtr.Report, error) {
	if err := req.Validate(); err != nil {
		return dtr.Report{}, err
	}

	viewer, err := auth.ViewerFromContext(ctx)
	if err != nil {
		return dtr.Report{}, err
	}
	if !viewer.IsAdmin {
		return dtr.Report{}, auth.ErrAdminPrivilegeRequired
	}
	if req.UserID == "" {
		return dtr.Report{}, dtr.ErrUserIDRequired
	}

	period, err := s.selectCutoff(ctx, req.CutoffID)
	if err != nil {
		return dtr.Report{}, err
	}

	return s.Snapshot(ctx, req.UserID, period)
}

// Snapshot implements dtr.Service.
func (s *DTRServiceImpl) Snapshot(ctx context.Context, userID string, period cutoff.Period) (dtr.Report, error) {
	sources, err := s.fetchSources(ctx, userID, period)
	if err != nil {
		return dtr.Report{}, err
	}

	report := ComputeDTR(userID, period, sources)

	snapshotID, err := uuid.NewV7()
	if err != nil {
		return dtr.Report{}, fmt.Errorf("failed to generate snapshot ID: %w", err)
	}

	if err := s.savedRepo.Replace(ctx, snapshotID.String(), userID, period.ID, report.Entries); err != nil {
		return dtr.Report{}, fmt.Errorf("failed to save DTR snapshot: %w", err)
	}

	report.Source = dtr.SourceSaved
	report.SnapshotID = snapshotID.String()
	report.GeneratedAt = s.now().UTC().Format(time.RFC3339)

	slog.Info("DTR snapshot saved",
		"snapshot_id", report.SnapshotID,
		"user_id", userID,
		"cutoff_id", period.ID,
		"entries", len(report.Entries),
	)
	return report, nil
}

// GetSaved implements dtr.Service.
func (s *DTRServiceImpl) GetSaved(ctx context.Context, req dtr.ReportRequest) (dtr.Report, error) {
	if err := req.Validate(); err != nil {
		return dtr.Report{}, err
	}

	viewer, err := auth.ViewerFromContext(ctx)
	if err != nil {
		return dtr.Report{}, err
	}

	userID, err := targetUser(viewer, req.UserID)
	if err != nil {
		return dtr.Report{}, err
	}

	period, err := s.selectCutoff(ctx, req.CutoffID)
	if err != nil {
		return dtr.Report{}, err
	}

	rows, err := s.savedRepo.List(ctx, userID, period.ID)
	if err != nil {
		return dtr.Report{}, fmt.Errorf("failed to load saved DTR: %w", err)
	}
	if len(rows) == 0 {
		return dtr.Report{}, dtr.ErrSavedDTRNotFound
	}

	entries := NormalizeSaved(rows)
	return dtr.Report{
		UserID:      userID,
		Cutoff:      cutoff.NewPeriodResponse(period),
		Source:      dtr.SourceSaved,
		SnapshotID:  rows[0].SnapshotID,
		GeneratedAt: rows[0].SavedAt.UTC().Format(time.RFC3339),
		Entries:     entries,
		Totals:      Aggregate(entries, period),
	}, nil
}

// ListCutoffs implements dtr.Service.
func (s *DTRServiceImpl) ListCutoffs(ctx context.Context) ([]cutoff.PeriodResponse, error) {
	periods, err := s.cutoffRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cutoff periods: %w", err)
	}

	sort.SliceStable(periods, func(i, j int) bool {
		return periods[i].StartDate.After(periods[j].StartDate)
	})

	responses := make([]cutoff.PeriodResponse, 0, len(periods))
	for _, p := range periods {
		responses = append(responses, cutoff.NewPeriodResponse(p))
	}
	return responses, nil
}

// targetUser resolves whose DTR is requested. Only admins may view other users.
func targetUser(viewer auth.Viewer, requested string) (string, error) {
	if requested == "" {
		return viewer.UserID, nil
	}
	if !viewer.CanView(requested) {
		return "", auth.ErrForbidden
	}
	return requested, nil
}

// selectCutoff loads the requested cutoff, defaulting to the most-recently-starting one.
func (s *DTRServiceImpl) selectCutoff(ctx context.Context, cutoffID string) (cutoff.Period, error) {
	if cutoffID != "" {
		return s.cutoffRepo.GetByID(ctx, cutoffID)
	}

	periods, err := s.cutoffRepo.List(ctx)
	if err != nil {
		return cutoff.Period{}, fmt.Errorf("failed to list cutoff periods: %w", err)
	}

	latest, ok := cutoff.Latest(periods)
	if !ok {
		return cutoff.Period{}, cutoff.ErrNoCutoffPeriods
	}
	return latest, nil
}

// fetchSources loads all six sources concurrently. A failing source is logged and
// treated as empty; only cancellation of ctx aborts the fetch.
func (s *DTRServiceImpl) fetchSources(ctx context.Context, userID string, period cutoff.Period) (Sources, error) {
	var src Sources
	start, end := period.StartDate, period.EndDate

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		src.Punches, err = collect(gCtx, "attendance", userID, func(ctx context.Context) ([]attendance.Punch, error) {
			return s.punchRepo.ListByUser(ctx, userID, start, end)
		})
		return err
	})

	g.Go(func() error {
		var err error
		src.TimeAdjustments, err = collect(gCtx, "time_adjustment", userID, func(ctx context.Context) ([]attendance.TimeAdjustment, error) {
			return s.timeAdjustmentRepo.ListByUser(ctx, userID, start, end)
		})
		return err
	})

	g.Go(func() error {
		var err error
		src.Leaves, err = collect(gCtx, "leave", userID, func(ctx context.Context) ([]leave.Request, error) {
			return s.leaveRepo.ListByUser(ctx, userID, start, end)
		})
		return err
	})

	g.Go(func() error {
		var err error
		src.ScheduleAdjustments, err = collect(gCtx, "schedule_adjustment", userID, func(ctx context.Context) ([]schedule.Adjustment, error) {
			return s.scheduleAdjustmentRepo.ListByUser(ctx, userID, start, end)
		})
		return err
	})

	g.Go(func() error {
		var err error
		src.Overtime, err = collect(gCtx, "overtime", userID, func(ctx context.Context) ([]overtime.Request, error) {
			return s.overtimeRepo.ListByUser(ctx, userID, start, end)
		})
		return err
	})

	g.Go(func() error {
		var err error
		src.Assignments, err = collect(gCtx, "schedule", userID, func(ctx context.Context) ([]schedule.Assignment, error) {
			return s.assignmentRepo.ListByUser(ctx, userID, start, end)
		})
		return err
	})

	if err := g.Wait(); err != nil {
		return Sources{}, err
	}
	return src, nil
}

func collect[T any](ctx context.Context, source, userID string, fetch func(context.Context) ([]T, error)) ([]T, error) {
	items, err := fetch(ctx)
	if err == nil {
		return items, nil
	}
	if ctx.Err() != nil {
		return nil, context.Cause(ctx)
	}

	slog.Warn("DTR source unavailable, treating as empty",
		"source", source,
		"user_id", userID,
		"error", err,
	)
	return []T{}, nil
}
