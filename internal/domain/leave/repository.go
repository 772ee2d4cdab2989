package leave

import (
	"context"
	"time"
)

// RequestRepository - interface for leave_requests table
type RequestRepository interface {
	// ListByUser returns the user's leave requests overlapping [start, end], any status
	ListByUser(ctx context.Context, userID string, start, end time.Time) ([]Request, error)
}
