package domain

import "time"

// CalendarDate a concrete date on which a prescriber has availability.
// Not persisted; recomputed relative to "now" on every projection.
type CalendarDate struct {
	Date       string `json:"date"`       // "2026-10-19"
	DayOfMonth int    `json:"dayOfMonth"` // 19
	MonthYear  string `json:"monthYear"`  // "October 2026"
	Weekday    string `json:"weekday"`    // "Monday"
}

// NewCalendarDate builds the display fields for t
func NewCalendarDate(t time.Time) CalendarDate {
	return CalendarDate{
		Date:       t.Format(DateFormat),
		DayOfMonth: t.Day(),
		MonthYear:  t.Format(MonthYearFormat),
		Weekday:    t.Weekday().String(),
	}
}

// StartOfDay truncates t to local midnight
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
