package projector

import (
	"time"

	"github.com/m04kA/prescriber-availability/internal/domain"
)

// TimeProvider supplies the current time; tests substitute a fixed clock.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider reads the wall clock.
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Config holds projection settings. Zero values fall back to the domain defaults.
type Config struct {
	HorizonDays      int
	IncrementMinutes int
}

// Projector maps a weekly availability onto concrete dates and times.
type Projector struct {
	horizonDays      int
	incrementMinutes int
	timeProvider     TimeProvider
}

// New returns a Projector. A nil timeProvider means the wall clock.
func New(cfg Config, timeProvider TimeProvider) *Projector {
	if cfg.HorizonDays == 0 {
		cfg.HorizonDays = domain.DefaultHorizonDays
	}
	if cfg.IncrementMinutes == 0 {
		cfg.IncrementMinutes = domain.DefaultIncrementMinutes
	}
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &Projector{
		horizonDays:      cfg.HorizonDays,
		incrementMinutes: cfg.IncrementMinutes,
		timeProvider:     timeProvider,
	}
}

// HorizonDays is the booking horizon. Listed dates never go past it.
func (p *Projector) HorizonDays() int {
	return p.horizonDays
}

// Now returns the projector clock time.
func (p *Projector) Now() time.Time {
	return p.timeProvider.Now()
}

// Dates lists the upcoming dates that have availability, today included.
// A negative horizonDays means the configured horizon.
func (p *Projector) Dates(availability domain.WeeklyAvailability, horizonDays int) []domain.CalendarDate {
	if horizonDays < 0 {
		horizonDays = p.horizonDays
	}
	return UpcomingDates(WeekdaysWithAvailability(availability), horizonDays, p.timeProvider.Now())
}

// TimeSlots lists the bookable start times on date.
func (p *Projector) TimeSlots(availability domain.WeeklyAvailability, date time.Time) []string {
	return TimeSlotsForDate(availability, DayNameForDate(date), p.incrementMinutes)
}

// IsBookable reports whether date is within the horizon and slot is one of its start times.
func (p *Projector) IsBookable(availability domain.WeeklyAvailability, date time.Time, slot string) bool {
	today := domain.StartOfDay(p.timeProvider.Now())
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, today.Location())
	if day.Before(today) || day.After(today.AddDate(0, 0, p.horizonDays)) {
		return false
	}

	for _, candidate := range p.TimeSlots(availability, date) {
		if candidate == slot {
			return true
		}
	}
	return false
}
