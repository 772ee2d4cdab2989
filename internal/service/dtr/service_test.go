package dtr

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/cutoff"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/dtr"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/schedule"
	"github.com/cmlabs-hris/hris-dtr-go/internal/pkg/generation"
)

const (
	adminID = "0198a1b2-0000-7000-8000-0000000000ad"
	otherID = "0198a1b2-0000-7000-8000-000000000002"
)

type fakePunchRepo struct {
	mu      sync.Mutex
	punches []attendance.Punch
	err     error
	// closed and then blocked on ctx by the next call only
	blockNext chan struct{}
}

func (f *fakePunchRepo) ListByUser(ctx context.Context, userID string, start, end time.Time) ([]attendance.Punch, error) {
	f.mu.Lock()
	started := f.blockNext
	f.blockNext = nil
	f.mu.Unlock()

	if started != nil {
		close(started)
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if f.err != nil {
		return nil, f.err
	}
	var within []attendance.Punch
	for _, p := range f.punches {
		if !p.Date.Before(start) && !p.Date.After(end) {
			within = append(within, p)
		}
	}
	return within, nil
}

type fakeTimeAdjustmentRepo struct{ items []attendance.TimeAdjustment }

func (f *fakeTimeAdjustmentRepo) ListByUser(ctx context.Context, userID string, start, end time.Time) ([]attendance.TimeAdjustment, error) {
	return f.items, nil
}

type fakeLeaveRepo struct {
	items []leave.Request
	err   error
}

func (f *fakeLeaveRepo) ListByUser(ctx context.Context, userID string, start, end time.Time) ([]leave.Request, error) {
	if f.err != nil {
		return nil, f.err
	}
	var overlapping []leave.Request
	for _, r := range f.items {
		if !r.StartDate.After(end) && !r.EndDate.Before(start) {
			overlapping = append(overlapping, r)
		}
	}
	return overlapping, nil
}

type fakeScheduleAdjustmentRepo struct{ items []schedule.Adjustment }

func (f *fakeScheduleAdjustmentRepo) ListByUser(ctx context.Context, userID string, start, end time.Time) ([]schedule.Adjustment, error) {
	return f.items, nil
}

type fakeOvertimeRepo struct{ items []overtime.Request }

func (f *fakeOvertimeRepo) ListByUser(ctx context.Context, userID string, start, end time.Time) ([]overtime.Request, error) {
	return f.items, nil
}

type fakeAssignmentRepo struct{ items []schedule.Assignment }

func (f *fakeAssignmentRepo) ListByUser(ctx context.Context, userID string, start, end time.Time) ([]schedule.Assignment, error) {
	return f.items, nil
}

func (f *fakeAssignmentRepo) ListAssignedUserIDs(ctx context.Context, onOrBefore time.Time) ([]string, error) {
	return []string{testUserID}, nil
}

type fakeCutoffRepo struct{ periods []cutoff.Period }

func (f *fakeCutoffRepo) List(ctx context.Context) ([]cutoff.Period, error) {
	return append([]cutoff.Period(nil), f.periods...), nil
}

func (f *fakeCutoffRepo) GetByID(ctx context.Context, id string) (cutoff.Period, error) {
	for _, p := range f.periods {
		if p.ID == id {
			return p, nil
		}
	}
	return cutoff.Period{}, cutoff.ErrCutoffNotFound
}

type fakeSavedRepo struct {
	mu   sync.Mutex
	rows map[string][]dtr.SavedEntry
}

func (f *fakeSavedRepo) Replace(ctx context.Context, snapshotID, userID, cutoffID string, entries []dtr.DayLedgerEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.rows == nil {
		f.rows = make(map[string][]dtr.SavedEntry)
	}
	rows := make([]dtr.SavedEntry, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, dtr.SavedEntry{SnapshotID: snapshotID, CutoffID: cutoffID, SavedAt: time.Now(), Entry: e})
	}
	f.rows[userID+"/"+cutoffID] = rows
	return nil
}

func (f *fakeSavedRepo) List(ctx context.Context, userID, cutoffID string) ([]dtr.SavedEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rows[userID+"/"+cutoffID], nil
}

type fakeRepos struct {
	punches  *fakePunchRepo
	leaves   *fakeLeaveRepo
	cutoffs  *fakeCutoffRepo
	saved    *fakeSavedRepo
	schedule *fakeAssignmentRepo
}

func newTestService() (dtr.Service, *fakeRepos) {
	src := officeSources()
	repos := &fakeRepos{
		punches:  &fakePunchRepo{punches: src.Punches},
		leaves:   &fakeLeaveRepo{items: src.Leaves},
		schedule: &fakeAssignmentRepo{items: src.Assignments},
		cutoffs: &fakeCutoffRepo{periods: []cutoff.Period{
			period("2024-12-23", "2025-01-05"),
			period("2025-01-06", "2025-01-10"),
		}},
		saved: &fakeSavedRepo{},
	}

	svc := NewDTRService(
		repos.punches,
		&fakeTimeAdjustmentRepo{},
		repos.leaves,
		&fakeScheduleAdjustmentRepo{},
		&fakeOvertimeRepo{},
		repos.schedule,
		repos.cutoffs,
		repos.saved,
		generation.NewTracker(),
	)
	return svc, repos
}

func viewerContext(t *testing.T, userID string, isAdmin bool) context.Context {
	t.Helper()
	token, err := jwt.NewBuilder().
		Claim("user_id", userID).
		Claim("is_admin", isAdmin).
		Build()
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestDTRService_ComputeDefaultsToCallerAndLatestCutoff(t *testing.T) {
	svc, _ := newTestService()

	report, err := svc.Compute(viewerContext(t, testUserID, false), dtr.ReportRequest{})
	require.NoError(t, err)

	assert.Equal(t, testUserID, report.UserID)
	assert.Equal(t, cutoffID("2025-01-06"), report.Cutoff.ID)
	assert.Equal(t, dtr.SourceComputed, report.Source)
	assert.NotEmpty(t, report.GeneratedAt)
	assert.Len(t, report.Entries, 5)
	assert.Equal(t, 2, report.Totals.LeaveDays)
}

func TestDTRService_ComputeSelectedCutoff(t *testing.T) {
	svc, _ := newTestService()

	report, err := svc.Compute(viewerContext(t, testUserID, false), dtr.ReportRequest{CutoffID: cutoffID("2024-12-23")})
	require.NoError(t, err)
	assert.Len(t, report.Entries, 14)

	_, err = svc.Compute(viewerContext(t, testUserID, false), dtr.ReportRequest{CutoffID: "0198a1b2-0000-7000-8000-00000000ffff"})
	assert.ErrorIs(t, err, cutoff.ErrCutoffNotFound)
}

func TestDTRService_ComputeNoCutoffs(t *testing.T) {
	svc, repos := newTestService()
	repos.cutoffs.periods = nil

	_, err := svc.Compute(viewerContext(t, testUserID, false), dtr.ReportRequest{})
	assert.ErrorIs(t, err, cutoff.ErrNoCutoffPeriods)
}

func TestDTRService_ComputeAccessControl(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Compute(viewerContext(t, otherID, false), dtr.ReportRequest{UserID: testUserID})
	assert.ErrorIs(t, err, auth.ErrForbidden)

	report, err := svc.Compute(viewerContext(t, adminID, true), dtr.ReportRequest{UserID: testUserID})
	require.NoError(t, err)
	assert.Equal(t, testUserID, report.UserID)

	_, err = svc.Compute(context.Background(), dtr.ReportRequest{})
	assert.Error(t, err)
}

func TestDTRService_ComputeDegradesFailingSource(t *testing.T) {
	svc, repos := newTestService()
	repos.leaves.err = errors.New("connection reset")

	report, err := svc.Compute(viewerContext(t, testUserID, false), dtr.ReportRequest{})
	require.NoError(t, err)

	assert.Zero(t, report.Totals.LeaveDays)
	assert.Equal(t, 4, report.Totals.AbsentDays)
	assert.Equal(t, 1, report.Totals.PresentDays)
}

func TestDTRService_NewerComputeSupersedesRunningOne(t *testing.T) {
	svc, repos := newTestService()
	started := make(chan struct{})
	repos.punches.blockNext = started

	ctx := viewerContext(t, testUserID, false)
	errCh := make(chan error, 1)
	go func() {
		_, err := svc.Compute(ctx, dtr.ReportRequest{CutoffID: cutoffID("2024-12-23")})
		errCh <- err
	}()
	<-started

	report, err := svc.Compute(ctx, dtr.ReportRequest{})
	require.NoError(t, err)
	assert.Equal(t, cutoffID("2025-01-06"), report.Cutoff.ID)

	assert.ErrorIs(t, <-errCh, dtr.ErrSupersededRun)
}

func TestDTRService_SaveRequiresAdminAndUser(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Save(viewerContext(t, testUserID, false), dtr.ReportRequest{UserID: testUserID})
	assert.ErrorIs(t, err, auth.ErrAdminPrivilegeRequired)

	_, err = svc.Save(viewerContext(t, adminID, true), dtr.ReportRequest{})
	assert.ErrorIs(t, err, dtr.ErrUserIDRequired)
}

func TestDTRService_SaveThenGetSaved(t *testing.T) {
	svc, repos := newTestService()

	saved, err := svc.Save(viewerContext(t, adminID, true), dtr.ReportRequest{UserID: testUserID})
	require.NoError(t, err)
	assert.Equal(t, dtr.SourceSaved, saved.Source)
	_, err = uuid.Parse(saved.SnapshotID)
	assert.NoError(t, err)
	assert.Len(t, repos.saved.rows[testUserID+"/"+cutoffID("2025-01-06")], 5)

	got, err := svc.GetSaved(viewerContext(t, testUserID, false), dtr.ReportRequest{})
	require.NoError(t, err)
	assert.Equal(t, saved.SnapshotID, got.SnapshotID)
	assert.Equal(t, dtr.SourceSaved, got.Source)
	assert.Equal(t, saved.Totals, got.Totals)
	assert.Equal(t, "2025-01-10", got.Entries[0].Date)
}

func TestDTRService_GetSavedMissing(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetSaved(viewerContext(t, testUserID, false), dtr.ReportRequest{})
	assert.ErrorIs(t, err, dtr.ErrSavedDTRNotFound)
}

func TestDTRService_ListCutoffsMostRecentFirst(t *testing.T) {
	svc, _ := newTestService()

	cutoffs, err := svc.ListCutoffs(context.Background())
	require.NoError(t, err)
	require.Len(t, cutoffs, 2)
	assert.Equal(t, "2025-01-06", cutoffs[0].StartDate)
	assert.Equal(t, "2024-12-23", cutoffs[1].StartDate)
}
