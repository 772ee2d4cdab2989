package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dtr-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.RequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

// ListByUser implements leave.RequestRepository. A leave is returned when its range
// overlaps [start, end] at all.
func (r *leaveRequestRepositoryImpl) ListByUser(ctx context.Context, userID string, start, end time.Time) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id::text, lr.user_id::text, lr.leave_type, lr.start_date, lr.end_date,
			   COALESCE(lr.reason, ''), lr.status, lr.reviewed_by::text, lr.reviewed_at,
			   lr.created_at, lr.updated_at
		FROM leave_requests lr
		WHERE lr.user_id = $1
		  AND lr.start_date <= $3
		  AND lr.end_date >= $2
		ORDER BY lr.start_date ASC
	`

	rows, err := q.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		var lr leave.Request
		err := rows.Scan(
			&lr.ID,
			&lr.UserID,
			&lr.Type,
			&lr.StartDate,
			&lr.EndDate,
			&lr.Reason,
			&lr.Status,
			&lr.ReviewedBy,
			&lr.ReviewedAt,
			&lr.CreatedAt,
			&lr.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}

	return requests, nil
}
