package normalizer

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation matches any *ValidationError via errors.Is
	ErrValidation = errors.New("availability validation failed")

	// ErrUnreadableInput is returned by CheckShape for input that is not an availability list
	ErrUnreadableInput = errors.New("availability input is not a list of slots")
)

// WholeAvailability is the Issue index of problems not tied to one slot
const WholeAvailability = -1

// Issue describes one slot rejected at submission time
type Issue struct {
	Index     int    `json:"index"`
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Reason    string `json:"reason"`
}

func (i Issue) String() string {
	if i.Index == WholeAvailability {
		return i.Reason
	}
	return fmt.Sprintf("slot #%d (%s %s-%s): %s", i.Index, i.Day, i.StartTime, i.EndTime, i.Reason)
}

// ValidationError lists every rejected slot of a submitted availability
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.String())
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

// Is allows errors.Is(err, ErrValidation)
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
