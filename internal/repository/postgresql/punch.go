package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dtr-go/internal/pkg/database"
)

type punchRepository struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) attendance.PunchRepository {
	return &punchRepository{db: db}
}

// ListByUser implements attendance.PunchRepository.
func (r *punchRepository) ListByUser(ctx context.Context, userID string, start, end time.Time) ([]attendance.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id::text, user_id::text, date,
			   ` + timeColumn("time_in") + `, ` + timeColumn("time_out") + `,
			   COALESCE(site, ''), COALESCE(remarks, ''), is_rest_day,
			   created_at, updated_at
		FROM attendance_punches
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance punches: %w", err)
	}
	defer rows.Close()

	var punches []attendance.Punch
	for rows.Next() {
		var p attendance.Punch
		err := rows.Scan(
			&p.ID, &p.UserID, &p.Date,
			&p.TimeIn, &p.TimeOut,
			&p.Site, &p.Remarks, &p.IsRestDay,
			&p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance punch: %w", err)
		}
		punches = append(punches, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance punches: %w", err)
	}

	return punches, nil
}

// timeColumn selects a nullable TIME column as "HH:MM:SS", or an empty string when null.
func timeColumn(name string) string {
	return "COALESCE(to_char(" + name + ", 'HH24:MI:SS'), '')"
}
