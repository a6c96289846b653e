package get_available_dates

import "github.com/m04kA/prescriber-availability/internal/domain"

// Request модель запроса на получение доступных дат
type Request struct {
	PrescriberID int64 // ID специалиста
	HorizonDays  *int  // Горизонт в днях (nil - значение из конфигурации, больше настроенного не бывает)
}

// Response модель ответа со списком дат
type Response struct {
	PrescriberID    int64                 // ID специалиста
	HasAvailability bool                  // Задано ли у специалиста хоть одно окно
	HorizonDays     int                   // Фактически применённый горизонт
	Dates           []domain.CalendarDate // Даты по возрастанию
}
