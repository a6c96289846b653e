package normalizer

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/m04kA/prescriber-availability/internal/domain"
	"github.com/m04kA/prescriber-availability/pkg/types"
)

// Options configures the times given to new and incomplete slots
type Options struct {
	DefaultStartTime string
	DefaultEndTime   string
}

// Normalizer turns partial availability input into WeeklyAvailability and implements
// the editing steps of the availability editor.
//
// Every method returns a new slice and leaves its arguments untouched.
type Normalizer struct {
	defaultStart string
	defaultEnd   string
}

// New creates a Normalizer; empty option values fall back to 09:00 and 17:00
func New(opts Options) *Normalizer {
	n := &Normalizer{
		defaultStart: domain.DefaultStartTime,
		defaultEnd:   domain.DefaultEndTime,
	}
	if opts.DefaultStartTime != "" {
		n.defaultStart = opts.DefaultStartTime
	}
	if opts.DefaultEndTime != "" {
		n.defaultEnd = opts.DefaultEndTime
	}
	return n
}

// Normalize accepts an array of partial slot records, a legacy array of weekday names,
// or a {"availability": [...]} document. It never fails: anything it cannot read
// yields an empty availability.
func (n *Normalizer) Normalize(raw json.RawMessage) domain.WeeklyAvailability {
	result := make(domain.WeeklyAvailability, 0)

	items, err := topLevelItems(raw)
	if err != nil {
		return result
	}

	for _, item := range items {
		// legacy shape: plain day name
		var day string
		if err := json.Unmarshal(item, &day); err == nil {
			if _, ok := domain.ParseWeekday(day); ok {
				result = append(result, n.defaultSlot(day))
			}
			continue
		}

		var record map[string]interface{}
		if err := json.Unmarshal(item, &record); err != nil {
			continue
		}
		result = append(result, n.normalizeRecord(record))
	}

	return result
}

// CheckShape reports whether raw is input Normalize can read: an array of slot records
// or day names, bare or wrapped as {"availability": [...]}. Normalize reads anything else
// as an empty availability, so a replacing save must check the shape first.
func (n *Normalizer) CheckShape(raw json.RawMessage) error {
	items, err := topLevelItems(raw)
	if err != nil {
		return err
	}
	for i, item := range items {
		switch firstByte(item) {
		case '{', '"':
		default:
			return fmt.Errorf("%w: element #%d is neither a slot record nor a day name", ErrUnreadableInput, i)
		}
	}
	return nil
}

func topLevelItems(raw json.RawMessage) ([]json.RawMessage, error) {
	switch firstByte(raw) {
	case '[':
	case '{':
		var doc map[string]json.RawMessage
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnreadableInput, err)
		}
		inner, ok := doc["availability"]
		if !ok {
			return nil, fmt.Errorf("%w: object without an availability field", ErrUnreadableInput)
		}
		if firstByte(inner) != '[' {
			return nil, fmt.Errorf("%w: availability is not an array", ErrUnreadableInput)
		}
		raw = inner
	default:
		return nil, fmt.Errorf("%w: expected an array or {\"availability\": [...]}", ErrUnreadableInput)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableInput, err)
	}
	return items, nil
}

func firstByte(raw []byte) byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

func (n *Normalizer) normalizeRecord(record map[string]interface{}) domain.AvailabilitySlot {
	slot := domain.AvailabilitySlot{
		Day:       stringField(record, "day"),
		StartTime: stringField(record, "startTime"),
		EndTime:   stringField(record, "endTime"),
	}
	if _, ok := domain.ParseWeekday(slot.Day); !ok {
		slot.Day = ""
	}
	if slot.StartTime == "" {
		slot.StartTime = n.defaultStart
	}
	if slot.EndTime == "" {
		slot.EndTime = n.defaultEnd
	}
	return slot
}

func stringField(record map[string]interface{}, key string) string {
	value, ok := record[key].(string)
	if !ok {
		return ""
	}
	return value
}

// ToggleDay adds one default slot when the day has none, otherwise clears every slot of the day
func (n *Normalizer) ToggleDay(current domain.WeeklyAvailability, day string) domain.WeeklyAvailability {
	if current.CountForDay(day) == 0 {
		return n.AddSlot(current, day)
	}

	result := make(domain.WeeklyAvailability, 0, len(current))
	for _, slot := range current {
		if domain.SameDay(slot.Day, day) {
			continue
		}
		result = append(result, slot)
	}
	return result
}

// AddSlot appends a default slot for the day. Identical slots are allowed.
func (n *Normalizer) AddSlot(current domain.WeeklyAvailability, day string) domain.WeeklyAvailability {
	result := make(domain.WeeklyAvailability, 0, len(current)+1)
	result = append(result, current...)
	return append(result, n.defaultSlot(day))
}

// RemoveSlot removes the index-th slot of the day (counted among that day's slots only).
// An out-of-range index leaves the availability unchanged.
func (n *Normalizer) RemoveSlot(current domain.WeeklyAvailability, day string, index int) domain.WeeklyAvailability {
	pos := positionOf(current, day, index)
	if pos < 0 {
		return current.Clone()
	}

	result := make(domain.WeeklyAvailability, 0, len(current)-1)
	result = append(result, current[:pos]...)
	return append(result, current[pos+1:]...)
}

// UpdateSlotTime sets startTime or endTime of the index-th slot of the day.
// The start < end ordering is not checked here, see Validate.
func (n *Normalizer) UpdateSlotTime(current domain.WeeklyAvailability, day string, index int, field, value string) domain.WeeklyAvailability {
	result := current.Clone()

	pos := positionOf(current, day, index)
	if pos < 0 {
		return result
	}

	switch field {
	case domain.FieldStartTime:
		result[pos].StartTime = value
	case domain.FieldEndTime:
		result[pos].EndTime = value
	}
	return result
}

// ApplyPreset returns one default slot per day of the preset, replacing prior availability.
// An unknown preset yields an empty availability.
func (n *Normalizer) ApplyPreset(preset Preset) domain.WeeklyAvailability {
	days, ok := preset.Days()
	if !ok {
		return make(domain.WeeklyAvailability, 0)
	}

	result := make(domain.WeeklyAvailability, 0, len(days))
	for _, day := range days {
		result = append(result, n.defaultSlot(day))
	}
	return result
}

// Validate is the submission check: every active slot must have parseable times and
// start < end, and a week holds at most domain.MaxSlotsPerWeek active slots.
// Inert slots are skipped, Canonicalize drops them.
func (n *Normalizer) Validate(availability domain.WeeklyAvailability) error {
	var issues []Issue
	active := 0
	for i, slot := range availability {
		if slot.IsInert() {
			continue
		}
		active++

		issue := Issue{Index: i, Day: slot.Day, StartTime: slot.StartTime, EndTime: slot.EndTime}

		start, err := types.TimeString(slot.StartTime).Minutes()
		if err != nil {
			issue.Reason = "invalid start time"
			issues = append(issues, issue)
			continue
		}
		end, err := types.TimeString(slot.EndTime).Minutes()
		if err != nil {
			issue.Reason = "invalid end time"
			issues = append(issues, issue)
			continue
		}
		if start >= end {
			issue.Reason = "start time must be before end time"
			issues = append(issues, issue)
		}
	}

	if active > domain.MaxSlotsPerWeek {
		issues = append(issues, Issue{
			Index:  WholeAvailability,
			Reason: fmt.Sprintf("more than %d slots per week", domain.MaxSlotsPerWeek),
		})
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// Canonicalize drops inert slots and rewrites day names and times into canonical form.
// Used right before persisting.
func (n *Normalizer) Canonicalize(availability domain.WeeklyAvailability) domain.WeeklyAvailability {
	result := make(domain.WeeklyAvailability, 0, len(availability))
	for _, slot := range availability {
		if slot.IsInert() {
			continue
		}
		result = append(result, domain.AvailabilitySlot{
			Day:       domain.CanonicalDay(slot.Day),
			StartTime: canonicalTime(slot.StartTime),
			EndTime:   canonicalTime(slot.EndTime),
		})
	}
	return result
}

func canonicalTime(value string) string {
	parsed, err := types.NewTimeStringFromString(value)
	if err != nil {
		return value
	}
	return parsed.String()
}

func (n *Normalizer) defaultSlot(day string) domain.AvailabilitySlot {
	return domain.AvailabilitySlot{
		Day:       day,
		StartTime: n.defaultStart,
		EndTime:   n.defaultEnd,
	}
}

// positionOf maps a per-day index to the position in the whole slice, -1 if out of range
func positionOf(availability domain.WeeklyAvailability, day string, index int) int {
	if index < 0 {
		return -1
	}
	seen := 0
	for i, slot := range availability {
		if !domain.SameDay(slot.Day, day) {
			continue
		}
		if seen == index {
			return i
		}
		seen++
	}
	return -1
}
