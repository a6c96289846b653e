package domain

// Default availability values
const (
	DefaultStartTime        = "09:00"
	DefaultEndTime          = "17:00"
	DefaultHorizonDays      = 42 // 6 weeks
	DefaultIncrementMinutes = 30
)

// Business validation constants
const (
	MinIncrementMinutes = 5
	MaxIncrementMinutes = 240
	MinHorizonDays      = 0
	MaxHorizonDays      = 365
	MaxSlotsPerWeek     = 7 * 24 // one slot per hour of the week
)

// Time format constants
const (
	DateFormat      = "2006-01-02" // YYYY-MM-DD
	MonthYearFormat = "January 2006"
)

// Slot time fields that the editor can change
const (
	FieldStartTime = "startTime"
	FieldEndTime   = "endTime"
)
