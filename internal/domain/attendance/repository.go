package attendance

import (
	"context"
	"time"
)

// PunchRepository reads clock-in/clock-out records.
type PunchRepository interface {
	// ListByUser returns the user's punches dated within [start, end]
	ListByUser(ctx context.Context, userID string, start, end time.Time) ([]Punch, error)
}

// TimeAdjustmentRepository reads time adjustment requests.
type TimeAdjustmentRepository interface {
	// ListByUser returns the user's time adjustments dated within [start, end], any status
	ListByUser(ctx context.Context, userID string, start, end time.Time) ([]TimeAdjustment, error)
}
