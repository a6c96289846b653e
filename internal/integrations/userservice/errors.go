package userservice

import "errors"

var (
	// ErrPatientNotFound возвращается, когда пациент не найден
	ErrPatientNotFound = errors.New("patient not found")

	// ErrPatientInactive возвращается, когда аккаунт пациента деактивирован
	ErrPatientInactive = errors.New("patient is inactive")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("userservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("userservice client: invalid response")

	// ErrServiceDegraded возвращается, когда UserService недоступен и проверка пациента пропущена
	ErrServiceDegraded = errors.New("userservice unavailable: graceful degradation applied")
)
