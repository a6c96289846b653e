package domain

import (
	"strings"
	"time"
)

// Canonical weekday names
const (
	Sunday    = "Sunday"
	Monday    = "Monday"
	Tuesday   = "Tuesday"
	Wednesday = "Wednesday"
	Thursday  = "Thursday"
	Friday    = "Friday"
	Saturday  = "Saturday"
)

// WeekOrder lists canonical day names Monday first, the order the editor shows them in
var WeekOrder = []string{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdaysByName = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday resolves a day name case-insensitively. Empty and unknown names return false.
func ParseWeekday(name string) (time.Weekday, bool) {
	wd, ok := weekdaysByName[strings.ToLower(strings.TrimSpace(name))]
	return wd, ok
}

// CanonicalDay returns the canonical spelling of a recognized day name, or "" for anything else
func CanonicalDay(name string) string {
	wd, ok := ParseWeekday(name)
	if !ok {
		return ""
	}
	return wd.String()
}

// SameDay compares two day names case-insensitively.
// Unrecognized names only match themselves exactly.
func SameDay(a, b string) bool {
	wa, okA := ParseWeekday(a)
	wb, okB := ParseWeekday(b)
	if okA && okB {
		return wa == wb
	}
	return a == b
}
