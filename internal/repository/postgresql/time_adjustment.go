package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dtr-go/internal/pkg/database"
)

type timeAdjustmentRepository struct {
	db *database.DB
}

func NewTimeAdjustmentRepository(db *database.DB) attendance.TimeAdjustmentRepository {
	return &timeAdjustmentRepository{db: db}
}

// ListByUser implements attendance.TimeAdjustmentRepository.
func (r *timeAdjustmentRepository) ListByUser(ctx context.Context, userID string, start, end time.Time) ([]attendance.TimeAdjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id::text, user_id::text, date,
			   ` + timeColumn("time_in") + `, ` + timeColumn("time_out") + `,
			   COALESCE(reason, ''), status, created_at
		FROM time_adjustment_requests
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date ASC, created_at ASC
	`

	rows, err := q.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query time adjustments: %w", err)
	}
	defer rows.Close()

	var adjustments []attendance.TimeAdjustment
	for rows.Next() {
		var a attendance.TimeAdjustment
		if err := rows.Scan(&a.ID, &a.UserID, &a.Date, &a.TimeIn, &a.TimeOut, &a.Reason, &a.Status, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan time adjustment: %w", err)
		}
		adjustments = append(adjustments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate time adjustments: %w", err)
	}

	return adjustments, nil
}
