package domain

// AvailabilitySlot a recurring weekly commitment of a prescriber.
// Has no identity beyond its three values.
type AvailabilitySlot struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "17:00"
}

// WeeklyAvailability all recurring slots of one prescriber.
// Order is not meaningful; multiple slots per day represent split shifts.
type WeeklyAvailability []AvailabilitySlot

// IsInert returns true if the slot's day is empty or not a weekday name.
// Inert slots are kept by the editor but contribute nothing to projection.
func (s AvailabilitySlot) IsInert() bool {
	_, ok := ParseWeekday(s.Day)
	return !ok
}

// Clone returns an independent copy
func (a WeeklyAvailability) Clone() WeeklyAvailability {
	out := make(WeeklyAvailability, len(a))
	copy(out, a)
	return out
}

// ForDay returns the slots of one day (case-insensitive), in their original relative order
func (a WeeklyAvailability) ForDay(day string) WeeklyAvailability {
	out := make(WeeklyAvailability, 0)
	for _, slot := range a {
		if SameDay(slot.Day, day) {
			out = append(out, slot)
		}
	}
	return out
}

// CountForDay returns how many slots the day has
func (a WeeklyAvailability) CountForDay(day string) int {
	count := 0
	for _, slot := range a {
		if SameDay(slot.Day, day) {
			count++
		}
	}
	return count
}

// AvailabilityDocument the persistence/transport shape: { "availability": [...] }
type AvailabilityDocument struct {
	Availability WeeklyAvailability `json:"availability"`
}

// NewAvailabilityDocument wraps the availability; nil becomes an empty array so that
// "no availability set" serializes as {"availability": []}
func NewAvailabilityDocument(availability WeeklyAvailability) *AvailabilityDocument {
	if availability == nil {
		availability = WeeklyAvailability{}
	}
	return &AvailabilityDocument{Availability: availability}
}
