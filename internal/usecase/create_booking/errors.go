package create_booking

import "errors"

var (
	// ErrPatientNotFound возвращается, когда пациент не найден в UserService
	ErrPatientNotFound = errors.New("create_booking: patient not found")

	// ErrPatientInactive возвращается, когда аккаунт пациента деактивирован
	ErrPatientInactive = errors.New("create_booking: patient is inactive")

	// ErrDateOutOfRange возвращается, когда дата в прошлом или за горизонтом бронирования
	ErrDateOutOfRange = errors.New("create_booking: date is outside the booking horizon")

	// ErrSlotNotAvailable возвращается, когда время не входит в расписание специалиста на эту дату
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
