package models

import (
	"encoding/json"

	"github.com/m04kA/prescriber-availability/internal/domain"
	"github.com/m04kA/prescriber-availability/internal/engine/normalizer"
)

// Операции редактора расписания
const (
	OpToggleDay      = "toggleDay"
	OpAddSlot        = "addSlot"
	OpRemoveSlot     = "removeSlot"
	OpUpdateSlotTime = "updateSlotTime"
	OpApplyPreset    = "applyPreset"
	OpNormalize      = "normalize"
)

// Request модели

// SaveAvailabilityRequest запрос на сохранение расписания
type SaveAvailabilityRequest struct {
	UserID       int64
	PrescriberID int64
	Availability json.RawMessage // массив слотов, массив дней или {"availability": [...]}
}

// EditAvailabilityRequest один шаг редактирования черновика расписания
type EditAvailabilityRequest struct {
	Operation string
	Draft     json.RawMessage
	Day       string
	Index     int
	Field     string
	Value     string
	Preset    string
}

// Response модели
// Сохранённое расписание отдается как domain.AvailabilityDocument: {"availability": [...]}

// EditAvailabilityResponse черновик после шага редактирования
// Issues не пустой, если черновик не пройдет проверку при сохранении
type EditAvailabilityResponse struct {
	Availability domain.WeeklyAvailability `json:"availability"`
	Issues       []normalizer.Issue        `json:"issues"`
}
