package overtime

import "time"

// Request is overtime filed for a single date, from StartTime to EndTime.
type Request struct {
	ID        string
	UserID    string
	Date      time.Time
	StartTime string
	EndTime   string
	Reason    string
	Status    string
	CreatedAt time.Time
}
