package attendance

import (
	"time"
)

// Punch is one day's clock-in/clock-out record. TimeIn and TimeOut are empty until the
// employee clocks in or out.
type Punch struct {
	ID        string
	UserID    string
	Date      time.Time
	TimeIn    string
	TimeOut   string
	Site      string
	Remarks   string
	IsRestDay bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TimeAdjustment is a correction of a day's punches, effective once approved.
type TimeAdjustment struct {
	ID        string
	UserID    string
	Date      time.Time
	TimeIn    string
	TimeOut   string
	Reason    string
	Status    string
	CreatedAt time.Time
}
