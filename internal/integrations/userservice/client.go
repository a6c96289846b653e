package userservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxErrorBodyBytes ограничивает тело ошибки, попадающее в лог
const maxErrorBodyBytes = 512

// Client клиент для проверки пациентов в UserService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента UserService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetPatient получает пациента по ID.
// Деактивированный аккаунт - ErrPatientInactive: UserService отвечает на него 403
// либо отдает запись с is_active=false.
func (c *Client) GetPatient(ctx context.Context, patientID int64) (*Patient, error) {
	url := fmt.Sprintf("%s/internal/patients/%d", c.baseURL, patientID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusForbidden:
		return nil, fmt.Errorf("%w: patient_id=%d, %s", ErrPatientInactive, patientID, readReason(resp.Body))
	case http.StatusNotFound, http.StatusGone:
		return nil, ErrPatientNotFound
	default:
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, readReason(resp.Body))
	}

	var patient Patient
	if err := json.NewDecoder(resp.Body).Decode(&patient); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if patient.ID != patientID {
		return nil, fmt.Errorf("%w: asked for patient %d, got %d", ErrInvalidResponse, patientID, patient.ID)
	}

	if !patient.IsActive {
		return &patient, fmt.Errorf("%w: patient_id=%d", ErrPatientInactive, patientID)
	}

	return &patient, nil
}

// VerifyPatient проверяет, что пациент может записываться.
// Отсутствие и деактивация пациента возвращаются как есть, остальные сбои -
// ErrServiceDegraded: недоступность UserService не блокирует бронирование.
func (c *Client) VerifyPatient(ctx context.Context, patientID int64) error {
	c.log.Info("Verifying patient id=%d", patientID)

	_, err := c.GetPatient(ctx, patientID)
	switch {
	case err == nil:
		c.log.Info("Patient id=%d is active", patientID)
		return nil

	case errors.Is(err, ErrPatientNotFound):
		c.log.Info("Patient id=%d not found", patientID)
		return err

	case errors.Is(err, ErrPatientInactive):
		c.log.Warn("Patient id=%d is deactivated: %v", patientID, err)
		return err

	default:
		c.log.Error("UserService unavailable, skipping check for patient_id=%d: %v", patientID, err)
		return fmt.Errorf("%w: patient_id=%d, error=%v", ErrServiceDegraded, patientID, err)
	}
}

// readReason достает message из ErrorResponse, иначе - сырое тело
func readReason(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, maxErrorBodyBytes))

	var errResp ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return string(raw)
}
