package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/cutoff"
	"github.com/cmlabs-hris/hris-dtr-go/internal/pkg/database"
)

type cutoffPeriodRepository struct {
	db *database.DB
}

func NewCutoffPeriodRepository(db *database.DB) cutoff.Repository {
	return &cutoffPeriodRepository{db: db}
}

// List implements cutoff.Repository.
func (r *cutoffPeriodRepository) List(ctx context.Context) ([]cutoff.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id::text, start_date, end_date
		FROM cutoff_periods
		ORDER BY start_date DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query cutoff periods: %w", err)
	}
	defer rows.Close()

	var periods []cutoff.Period
	for rows.Next() {
		var p cutoff.Period
		if err := rows.Scan(&p.ID, &p.StartDate, &p.EndDate); err != nil {
			return nil, fmt.Errorf("failed to scan cutoff period: %w", err)
		}
		periods = append(periods, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cutoff periods: %w", err)
	}

	return periods, nil
}

// GetByID implements cutoff.Repository.
func (r *cutoffPeriodRepository) GetByID(ctx context.Context, id string) (cutoff.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id::text, start_date, end_date
		FROM cutoff_periods
		WHERE id::text = $1
	`

	var p cutoff.Period
	err := q.QueryRow(ctx, query, id).Scan(&p.ID, &p.StartDate, &p.EndDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return cutoff.Period{}, cutoff.ErrCutoffNotFound
		}
		return cutoff.Period{}, fmt.Errorf("failed to get cutoff period: %w", err)
	}

	return p, nil
}
