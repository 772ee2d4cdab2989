package schedule

import (
	"context"
	"time"
)

type AssignmentRepository interface {
	// ListByUser returns every assignment effective on or before end, with its
	// definition loaded. Assignments before start are needed to resolve the first days.
	ListByUser(ctx context.Context, userID string, start, end time.Time) ([]Assignment, error)

	// ListAssignedUserIDs returns users with at least one assignment effective on or before date.
	ListAssignedUserIDs(ctx context.Context, onOrBefore time.Time) ([]string, error)
}

type AdjustmentRepository interface {
	ListByUser(ctx context.Context, userID string, start, end time.Time) ([]Adjustment, error)
}
