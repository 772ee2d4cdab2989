package approval

import "context"

// StatusRepository moves one kind of request out of pending. Implementations must only
// update rows whose status is still pending.
type StatusRepository interface {
	Review(ctx context.Context, review Review) (Review, error)
}
