package create_booking

import (
	"time"

	"github.com/m04kA/prescriber-availability/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	PatientID    int64   // ID пациента (из X-User-ID)
	PrescriberID int64   // ID специалиста
	Date         string  // Дата в формате YYYY-MM-DD
	Time         string  // Время слота: "14:30" или "2:30 PM"
	Notes        *string // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64            // ID созданного бронирования
	PrescriberID int64            // ID специалиста
	PatientID    int64            // ID пациента
	BookingDate  time.Time        // Дата бронирования
	StartTime    types.TimeString // Время начала "HH:MM"
	DisplayTime  string           // Время начала "h:mm AM/PM"
	Status       string           // Статус бронирования
	Notes        *string          // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
