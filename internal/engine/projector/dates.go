package projector

import (
	"time"

	"github.com/m04kA/prescriber-availability/internal/domain"
)

// WeekdaysWithAvailability returns the weekdays that have at least one slot.
// Empty and unrecognized day names are ignored.
func WeekdaysWithAvailability(availability domain.WeeklyAvailability) map[time.Weekday]struct{} {
	weekdays := make(map[time.Weekday]struct{})
	for _, slot := range availability {
		if wd, ok := domain.ParseWeekday(slot.Day); ok {
			weekdays[wd] = struct{}{}
		}
	}
	return weekdays
}

// UpcomingDates lists every date from today through today+horizonDays (both inclusive)
// whose weekday is in weekdays, in ascending order.
func UpcomingDates(weekdays map[time.Weekday]struct{}, horizonDays int, now time.Time) []domain.CalendarDate {
	dates := make([]domain.CalendarDate, 0)
	if len(weekdays) == 0 || horizonDays < 0 {
		return dates
	}

	today := domain.StartOfDay(now)
	for offset := 0; offset <= horizonDays; offset++ {
		// AddDate keeps wall-clock midnight across DST changes
		day := today.AddDate(0, 0, offset)
		if _, ok := weekdays[day.Weekday()]; !ok {
			continue
		}
		dates = append(dates, domain.NewCalendarDate(day))
	}
	return dates
}

// DayNameForDate returns the canonical weekday name of the date
func DayNameForDate(date time.Time) string {
	return date.Weekday().String()
}
