package update_availability

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/m04kA/prescriber-availability/internal/service/availability/models"
)

var errEmptyBody = errors.New("empty request body")

// ToServiceRequest оборачивает тело запроса в запрос сервиса.
// Тело передаётся как есть: массив слотов, массив дней или {"availability": [...]}.
func ToServiceRequest(userID, prescriberID int64, body []byte) (*models.SaveAvailabilityRequest, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, errEmptyBody
	}
	if !json.Valid(body) {
		return nil, errors.New("request body is not valid JSON")
	}

	return &models.SaveAvailabilityRequest{
		UserID:       userID,
		PrescriberID: prescriberID,
		Availability: json.RawMessage(body),
	}, nil
}
