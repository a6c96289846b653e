package edit_availability

import (
	"encoding/json"

	"github.com/m04kA/prescriber-availability/internal/service/availability/models"
)

// EditAvailabilityRequest HTTP request model
type EditAvailabilityRequest struct {
	Operation string          `json:"operation"` // toggleDay, addSlot, removeSlot, updateSlotTime, applyPreset, normalize
	Draft     json.RawMessage `json:"draft,omitempty"`
	Day       string          `json:"day,omitempty"`
	Index     int             `json:"index,omitempty"`
	Field     string          `json:"field,omitempty"` // startTime | endTime
	Value     string          `json:"value,omitempty"`
	Preset    string          `json:"preset,omitempty"` // weekdays | weekends | all
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *EditAvailabilityRequest) ToServiceRequest() *models.EditAvailabilityRequest {
	return &models.EditAvailabilityRequest{
		Operation: r.Operation,
		Draft:     r.Draft,
		Day:       r.Day,
		Index:     r.Index,
		Field:     r.Field,
		Value:     r.Value,
		Preset:    r.Preset,
	}
}
