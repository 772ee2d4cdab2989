package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/approval"
	"github.com/cmlabs-hris/hris-dtr-go/internal/pkg/database"
)

// requestTables maps each reviewable kind to its table. Table names are never taken
// from input.
var requestTables = map[approval.Kind]string{
	approval.KindLeave:              "leave_requests",
	approval.KindOvertime:           "overtime_requests",
	approval.KindTimeAdjustment:     "time_adjustment_requests",
	approval.KindScheduleAdjustment: "schedule_adjustment_requests",
}

type requestStatusRepository struct {
	db    *database.DB
	table string
}

// NewRequestStatusRepositories returns one status repository per request kind.
func NewRequestStatusRepositories(db *database.DB) map[approval.Kind]approval.StatusRepository {
	repos := make(map[approval.Kind]approval.StatusRepository, len(requestTables))
	for kind, table := range requestTables {
		repos[kind] = &requestStatusRepository{db: db, table: table}
	}
	return repos
}

// Review implements approval.StatusRepository.
func (r *requestStatusRepository) Review(ctx context.Context, review approval.Review) (approval.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE ` + r.table + `
		SET status = $2, reviewed_by = $3, reviewed_at = $4, review_note = $5, updated_at = NOW()
		WHERE id::text = $1 AND LOWER(status) = 'pending'
		RETURNING reviewed_at
	`

	err := q.QueryRow(ctx, query,
		review.RequestID, string(review.Status), review.ReviewerID, review.ReviewedAt, review.Note,
	).Scan(&review.ReviewedAt)
	if err == nil {
		return review, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return approval.Review{}, fmt.Errorf("failed to review %s: %w", review.Kind, err)
	}

	var exists bool
	err = q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM `+r.table+` WHERE id::text = $1)`, review.RequestID).Scan(&exists)
	if err != nil {
		return approval.Review{}, fmt.Errorf("failed to check %s: %w", review.Kind, err)
	}
	if exists {
		return approval.Review{}, approval.ErrRequestAlreadyReviewed
	}
	return approval.Review{}, approval.ErrRequestNotFound
}
