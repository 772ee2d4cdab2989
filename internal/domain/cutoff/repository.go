package cutoff

import "context"

type Repository interface {
	// List returns every cutoff period, most recent start first
	List(ctx context.Context) ([]Period, error)
	GetByID(ctx context.Context, id string) (Period, error)
}
