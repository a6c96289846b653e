package get_time_slots

import "time"

// Request модель запроса на получение слотов
type Request struct {
	PrescriberID int64  // ID специалиста
	Date         string // Дата в формате YYYY-MM-DD
}

// Response модель ответа со слотами на дату
type Response struct {
	Date            time.Time // Запрошенная дата (полночь)
	Weekday         string    // День недели даты
	HasAvailability bool      // Задано ли у специалиста хоть одно окно
	Slots           []string  // Слоты "h:mm AM/PM" по возрастанию
	Booked          []string  // Время уже активных бронирований на эту дату
}
