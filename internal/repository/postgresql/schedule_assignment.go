package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/schedule"
	"github.com/cmlabs-hris/hris-dtr-go/internal/pkg/database"
)

type scheduleAssignmentRepository struct {
	db *database.DB
}

func NewScheduleAssignmentRepository(db *database.DB) schedule.AssignmentRepository {
	return &scheduleAssignmentRepository{db: db}
}

// ListByUser implements schedule.AssignmentRepository. start is unused on purpose:
// the assignment in effect on the first day may have begun long before it.
func (r *scheduleAssignmentRepository) ListByUser(ctx context.Context, userID string, start, end time.Time) ([]schedule.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sa.id::text, sa.user_id::text, sa.schedule_id::text, sa.effectivity_date, sa.created_at,
			   s.title, s.per_weekday_shift
		FROM schedule_assignments sa
		INNER JOIN schedules s ON s.id = sa.schedule_id
		WHERE sa.user_id = $1 AND sa.effectivity_date <= $2
		ORDER BY sa.effectivity_date DESC
	`

	rows, err := q.Query(ctx, query, userID, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule assignments: %w", err)
	}
	defer rows.Close()

	var assignments []schedule.Assignment
	for rows.Next() {
		var a schedule.Assignment
		err := rows.Scan(
			&a.ID, &a.UserID, &a.ScheduleID, &a.EffectivityDate, &a.CreatedAt,
			&a.Definition.Title, &a.Definition.Shifts,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule assignment: %w", err)
		}
		a.Definition.ID = a.ScheduleID
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate schedule assignments: %w", err)
	}

	return assignments, nil
}

// ListAssignedUserIDs implements schedule.AssignmentRepository.
func (r *scheduleAssignmentRepository) ListAssignedUserIDs(ctx context.Context, onOrBefore time.Time) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT user_id::text
		FROM schedule_assignments
		WHERE effectivity_date <= $1
		ORDER BY 1
	`

	rows, err := q.Query(ctx, query, onOrBefore)
	if err != nil {
		return nil, fmt.Errorf("failed to query assigned users: %w", err)
	}
	defer rows.Close()

	var userIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan assigned user: %w", err)
		}
		userIDs = append(userIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assigned users: %w", err)
	}

	return userIDs, nil
}
