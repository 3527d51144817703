package get_available_slots

import "time"

// Request модель запроса доступных слотов
type Request struct {
	TableID int64     // ID стола
	Date    time.Time // Дата (без времени)
}

// Response модель ответа со свободными слотами
type Response struct {
	TableID      int64
	RestaurantID int64
	Date         time.Time
	Slots        []time.Time // Свободные часовые стартовые времена, по возрастанию
}
