package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/schedule"
	"github.com/cmlabs-hris/hris-dtr-go/internal/pkg/database"
)

type scheduleAdjustmentRepository struct {
	db *database.DB
}

func NewScheduleAdjustmentRepository(db *database.DB) schedule.AdjustmentRepository {
	return &scheduleAdjustmentRepository{db: db}
}

// ListByUser implements schedule.AdjustmentRepository. Rows come oldest first so the
// latest adjustment of a day is the last one.
func (r *scheduleAdjustmentRepository) ListByUser(ctx context.Context, userID string, start, end time.Time) ([]schedule.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id::text, user_id::text, date,
			   ` + timeColumn("time_in") + `, ` + timeColumn("time_out") + `,
			   COALESCE(reason, ''), status, created_at
		FROM schedule_adjustment_requests
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date ASC, created_at ASC
	`

	rows, err := q.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule adjustments: %w", err)
	}
	defer rows.Close()

	var adjustments []schedule.Adjustment
	for rows.Next() {
		var a schedule.Adjustment
		if err := rows.Scan(&a.ID, &a.UserID, &a.Date, &a.TimeIn, &a.TimeOut, &a.Reason, &a.Status, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan schedule adjustment: %w", err)
		}
		adjustments = append(adjustments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate schedule adjustments: %w", err)
	}

	return adjustments, nil
}
