package approval

import "context"

type Service interface {
	// Review approves or rejects a pending request (admin only)
	Review(ctx context.Context, req ReviewRequest) (ReviewResponse, error)
}
