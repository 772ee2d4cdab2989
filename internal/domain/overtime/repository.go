package overtime

import (
	"context"
	"time"
)

type RequestRepository interface {
	// ListByUser returns the user's overtime requests dated within [start, end], any status
	ListByUser(ctx context.Context, userID string, start, end time.Time) ([]Request, error)
}
