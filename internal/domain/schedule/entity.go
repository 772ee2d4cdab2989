package schedule

import "time"

// Shift is the scheduled clock-in/clock-out of one weekday. Times are stored as
// written by the schedule editor, in 24-hour or 12-hour form.
type Shift struct {
	In  string `json:"in_time"`
	Out string `json:"out_time"`
}

// Definition is a named weekly schedule. Shifts is keyed by English weekday name
// ("Monday" ... "Sunday"); a weekday without an entry is a rest day.
type Definition struct {
	ID     string
	Title  string
	Shifts map[string]Shift
}

// ShiftOn returns the shift for weekday, or false on a rest day.
func (d Definition) ShiftOn(weekday time.Weekday) (Shift, bool) {
	shift, ok := d.Shifts[weekday.String()]
	return shift, ok
}

// Assignment puts a Definition in effect for a user from EffectivityDate until the
// next assignment takes over.
type Assignment struct {
	ID              string
	UserID          string
	ScheduleID      string
	EffectivityDate time.Time
	Definition      Definition
	CreatedAt       time.Time
}

// Adjustment is an ad-hoc shift change for a single date.
type Adjustment struct {
	ID        string
	UserID    string
	Date      time.Time
	TimeIn    string
	TimeOut   string
	Reason    string
	Status    string
	CreatedAt time.Time
}
