package projector

import (
	"sort"

	"github.com/m04kA/prescriber-availability/internal/domain"
	"github.com/m04kA/prescriber-availability/pkg/types"
)

// TimeSlotsForDate walks every slot of dayName from its start up to, but not including,
// its end in incrementMinutes steps. The union is returned in chronological order
// without duplicates, formatted as "h:mm AM/PM".
//
// Slots with unparseable times or start >= end contribute nothing, so projection
// never accepts what validation rejects.
func TimeSlotsForDate(availability domain.WeeklyAvailability, dayName string, incrementMinutes int) []string {
	slots := make([]string, 0)
	if incrementMinutes <= 0 {
		return slots
	}
	if _, ok := domain.ParseWeekday(dayName); !ok {
		return slots
	}

	offsets := make(map[int]struct{})
	for _, slot := range availability.ForDay(dayName) {
		start, err := types.TimeString(slot.StartTime).Minutes()
		if err != nil {
			continue
		}
		end, err := types.TimeString(slot.EndTime).Minutes()
		if err != nil || start >= end {
			continue
		}
		for minute := start; minute < end; minute += incrementMinutes {
			offsets[minute] = struct{}{}
		}
	}

	sorted := make([]int, 0, len(offsets))
	for minute := range offsets {
		sorted = append(sorted, minute)
	}
	sort.Ints(sorted)

	for _, minute := range sorted {
		slots = append(slots, types.FormatMinutes12h(minute))
	}
	return slots
}
