package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-dtr-go/internal/pkg/database"
)

type overtimeRequestRepository struct {
	db *database.DB
}

func NewOvertimeRequestRepository(db *database.DB) overtime.RequestRepository {
	return &overtimeRequestRepository{db: db}
}

// ListByUser implements overtime.RequestRepository.
func (r *overtimeRequestRepository) ListByUser(ctx context.Context, userID string, start, end time.Time) ([]overtime.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id::text, user_id::text, date,
			   ` + timeColumn("start_time") + `, ` + timeColumn("end_time") + `,
			   COALESCE(reason, ''), status, created_at
		FROM overtime_requests
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date ASC, start_time ASC
	`

	rows, err := q.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query overtime requests: %w", err)
	}
	defer rows.Close()

	var requests []overtime.Request
	for rows.Next() {
		var o overtime.Request
		if err := rows.Scan(&o.ID, &o.UserID, &o.Date, &o.StartTime, &o.EndTime, &o.Reason, &o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan overtime request: %w", err)
		}
		requests = append(requests, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate overtime requests: %w", err)
	}

	return requests, nil
}
