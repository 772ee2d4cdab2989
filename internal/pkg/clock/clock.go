package clock

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DateLayout is the calendar date format used on the wire and as ledger keys.
	DateLayout = "2006-01-02"

	// DisplayLayout is the 12-hour "h:mm A" form every time of day is normalized to.
	DisplayLayout = "3:04 PM"
)

// referenceDate anchors parsed times of day so they can be compared as instants.
var referenceDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Stored times arrive in either 12-hour or 24-hour form.
var timeLayouts = []string{
	"3:04 PM",
	"3:04PM",
	"3:04:05 PM",
	"15:04:05",
	"15:04",
}

// Parse reads a time of day in any accepted layout and places it on the reference date.
func Parse(value string) (time.Time, bool) {
	value = strings.ToUpper(strings.TrimSpace(value))
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return time.Date(
				referenceDate.Year(), referenceDate.Month(), referenceDate.Day(),
				t.Hour(), t.Minute(), t.Second(), 0, time.UTC,
			), true
		}
	}

	return time.Time{}, false
}

// To12Hour formats a stored time of day as "h:mm AM". Unparseable input yields "".
func To12Hour(value string) string {
	t, ok := Parse(value)
	if !ok {
		return ""
	}
	return t.Format(DisplayLayout)
}

// Instant normalizes value to the 12-hour form and parses it back, so that 24-hour and
// 12-hour inputs compare on equal footing.
func Instant(value string) (time.Time, bool) {
	return Parse(To12Hour(value))
}

// MinutesBetween returns a - b in whole minutes.
func MinutesBetween(a, b string) (int, bool) {
	ta, ok := Instant(a)
	if !ok {
		return 0, false
	}
	tb, ok := Instant(b)
	if !ok {
		return 0, false
	}
	return int(ta.Sub(tb) / time.Minute), true
}

// HoursBetween returns the hours from in to out rounded to 2 decimals. A time out earlier
// than the time in is read as a next-day checkout. Missing or invalid values yield 0.
func HoursBetween(out, in string) float64 {
	tOut, ok := Instant(out)
	if !ok {
		return 0
	}
	tIn, ok := Instant(in)
	if !ok {
		return 0
	}

	d := tOut.Sub(tIn)
	if d < 0 {
		d += 24 * time.Hour
	}
	return RoundHours(decimal.NewFromInt(int64(d / time.Minute)).Div(decimal.NewFromInt(60)))
}

// RoundHours rounds an hour amount to 2 decimals.
func RoundHours(hours decimal.Decimal) float64 {
	return hours.Round(2).InexactFloat64()
}

// ParseDate parses a YYYY-MM-DD date at UTC midnight.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(value))
}

// FormatDate formats t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Day drops the time of day, keeping the calendar date of t.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EachDay calls fn for every calendar day in the closed interval [start, end].
func EachDay(start, end time.Time, fn func(day time.Time)) {
	last := Day(end)
	for day := Day(start); !day.After(last); day = day.AddDate(0, 0, 1) {
		fn(day)
	}
}

// WeekdayName returns the English weekday name of a YYYY-MM-DD date, or "" if invalid.
func WeekdayName(date string) string {
	d, err := ParseDate(date)
	if err != nil {
		return ""
	}
	return d.Weekday().String()
}
