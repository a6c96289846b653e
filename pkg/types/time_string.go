package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
)

var (
	// ErrInvalidTimeFormat is returned when a string is not a HH:MM wall-clock time
	ErrInvalidTimeFormat = errors.New("invalid time string format")
)

// TimeString is a wall-clock time of day in canonical 24-hour "HH:MM" form
// (zero-padded, no seconds, no timezone).
type TimeString string

// NewTimeString takes the hour and minute of t
func NewTimeString(t time.Time) TimeString {
	return FromMinutes(t.Hour()*minutesPerHour + t.Minute())
}

// NewTimeStringFromString parses "HH:MM" (a trailing ":SS" as returned by postgres TIME is accepted and dropped)
func NewTimeStringFromString(s string) (TimeString, error) {
	minutes, err := parseMinutes(s)
	if err != nil {
		return "", err
	}
	return FromMinutes(minutes), nil
}

// FromMinutes builds a TimeString from minutes since midnight.
// Values outside one day wrap around.
func FromMinutes(minutes int) TimeString {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/minutesPerHour, minutes%minutesPerHour))
}

// String returns the canonical representation
func (t TimeString) String() string {
	return string(t)
}

// IsZero reports whether the value is empty
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value is a well-formed HH:MM time
func (t TimeString) Validate() error {
	_, err := parseMinutes(string(t))
	return err
}

// Minutes returns minutes since midnight
func (t TimeString) Minutes() (int, error) {
	return parseMinutes(string(t))
}

// IsBefore compares two times; malformed values never compare as before
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	return errA == nil && errB == nil && a < b
}

// Format12h renders the time as "h:mm AM/PM" without a leading zero on the hour, e.g. "9:00 AM", "2:30 PM"
func (t TimeString) Format12h() (string, error) {
	minutes, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return FormatMinutes12h(minutes), nil
}

// FormatMinutes12h renders minutes since midnight as "h:mm AM/PM"
func FormatMinutes12h(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	hour := minutes / minutesPerHour
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour12, minutes%minutesPerHour, period)
}

// Parse12h parses "h:mm AM/PM" (case-insensitive period) back into a TimeString
func Parse12h(s string) (TimeString, error) {
	parsed, err := time.Parse("3:04 PM", strings.ToUpper(strings.TrimSpace(s)))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return NewTimeString(parsed), nil
}

// Value implements driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan implements sql.Scanner; postgres TIME columns arrive as "HH:MM:SS"
func (t *TimeString) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeFormat, src)
	}

	parsed, err := NewTimeStringFromString(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func parseMinutes(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	if len(parts[0]) == 0 || len(parts[0]) > 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	// Atoi accepts a sign, the wall clock does not
	if !isDigits(parts[0]) || !isDigits(parts[1]) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	if len(parts) == 3 {
		// seconds (postgres may add a fraction) are dropped but must still be valid
		whole, fraction, hasFraction := strings.Cut(parts[2], ".")
		if !isDigits(whole) || (hasFraction && !isDigits(fraction)) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
		seconds, err := strconv.Atoi(whole)
		if err != nil || seconds < 0 || seconds > 59 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
	}

	return hours*minutesPerHour + minutes, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
