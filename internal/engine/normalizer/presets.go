package normalizer

import "github.com/m04kA/prescriber-availability/internal/domain"

// Preset a named set of days for bulk replacement
type Preset string

const (
	PresetWeekdays Preset = "weekdays"
	PresetWeekends Preset = "weekends"
	PresetAll      Preset = "all"
)

var presetDays = map[Preset][]string{
	PresetWeekdays: {domain.Monday, domain.Tuesday, domain.Wednesday, domain.Thursday, domain.Friday},
	PresetWeekends: {domain.Saturday, domain.Sunday},
	PresetAll:      domain.WeekOrder,
}

// Days returns the preset's day set; false for unknown presets
func (p Preset) Days() ([]string, bool) {
	days, ok := presetDays[p]
	return days, ok
}
