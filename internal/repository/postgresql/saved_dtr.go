package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/dtr"
	"github.com/cmlabs-hris/hris-dtr-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-dtr-go/internal/pkg/validator"
)

type savedDTRRepository struct {
	db *database.DB
}

func NewSavedDTRRepository(db *database.DB) dtr.SavedRepository {
	return &savedDTRRepository{db: db}
}

var savedDTRColumns = []string{
	"snapshot_id", "user_id", "cutoff_id", "date", "weekday", "site", "time_in", "time_out",
	"total_hours", "remarks", "is_rest_day", "is_absent", "is_leave", "is_time_adjustment",
	"is_schedule_adjusted", "work_shift", "schedule_title", "leave_type", "leave_id",
	"late_minutes", "undertime_minutes", "overtime_hours", "overtime",
}

// Replace implements dtr.SavedRepository. The previous snapshot is removed and the new
// one inserted within a single transaction. Entries with a malformed time in or time out
// are rejected before anything is written.
func (r *savedDTRRepository) Replace(ctx context.Context, snapshotID, userID, cutoffID string, entries []dtr.DayLedgerEntry) error {
	insert := `
		INSERT INTO saved_dtr_entries (` + strings.Join(savedDTRColumns, ", ") + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
	`

	batch := &pgx.Batch{}
	for _, e := range entries {
		if err := checkClocks(e); err != nil {
			return err
		}
		overtime, err := json.Marshal(e.Overtime)
		if err != nil {
			return fmt.Errorf("failed to encode overtime of %s: %w", e.Date, err)
		}
		batch.Queue(insert,
			snapshotID, userID, cutoffID, e.Date, e.Weekday, e.Site, e.TimeIn, e.TimeOut,
			e.TotalHours, e.Remarks, e.IsRestDay, e.IsAbsent, e.IsLeave, e.IsTimeAdjustment,
			e.IsScheduleAdjusted, e.WorkShift, e.ScheduleTitle, e.LeaveType, e.LeaveID,
			e.LateMinutes, e.UndertimeMinutes, e.OvertimeHours, overtime,
		)
	}

	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		_, err := q.Exec(txCtx, `
			DELETE FROM saved_dtr_entries
			WHERE user_id = $1 AND cutoff_id = $2
		`, userID, cutoffID)
		if err != nil {
			return fmt.Errorf("failed to delete previous snapshot: %w", err)
		}

		if err := q.SendBatch(txCtx, batch).Close(); err != nil {
			return fmt.Errorf("failed to insert snapshot rows: %w", err)
		}
		return nil
	})
}

func checkClocks(e dtr.DayLedgerEntry) error {
	for _, value := range []string{e.TimeIn, e.TimeOut} {
		if value != "" && !validator.IsValidClock(value) {
			return fmt.Errorf("%w: %q on %s", dtr.ErrInvalidClock, value, e.Date)
		}
	}
	return nil
}

// List implements dtr.SavedRepository.
func (r *savedDTRRepository) List(ctx context.Context, userID, cutoffID string) ([]dtr.SavedEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT snapshot_id::text, cutoff_id::text, saved_at,
			   to_char(date, 'YYYY-MM-DD'), weekday, site, time_in, time_out,
			   total_hours, remarks, is_rest_day, is_absent, is_leave, is_time_adjustment,
			   is_schedule_adjusted, work_shift, schedule_title, leave_type, leave_id,
			   late_minutes, undertime_minutes, overtime_hours, overtime, user_id::text
		FROM saved_dtr_entries
		WHERE user_id = $1 AND cutoff_id = $2
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, userID, cutoffID)
	if err != nil {
		return nil, fmt.Errorf("failed to query saved DTR: %w", err)
	}
	defer rows.Close()

	var saved []dtr.SavedEntry
	for rows.Next() {
		var (
			s        dtr.SavedEntry
			overtime []byte
		)
		e := &s.Entry
		err := rows.Scan(
			&s.SnapshotID, &s.CutoffID, &s.SavedAt,
			&e.Date, &e.Weekday, &e.Site, &e.TimeIn, &e.TimeOut,
			&e.TotalHours, &e.Remarks, &e.IsRestDay, &e.IsAbsent, &e.IsLeave, &e.IsTimeAdjustment,
			&e.IsScheduleAdjusted, &e.WorkShift, &e.ScheduleTitle, &e.LeaveType, &e.LeaveID,
			&e.LateMinutes, &e.UndertimeMinutes, &e.OvertimeHours, &overtime, &e.UserID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan saved DTR entry: %w", err)
		}
		if len(overtime) > 0 {
			if err := json.Unmarshal(overtime, &e.Overtime); err != nil {
				return nil, fmt.Errorf("failed to decode overtime of %s: %w", e.Date, err)
			}
		}
		saved = append(saved, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate saved DTR: %w", err)
	}

	return saved, nil
}
