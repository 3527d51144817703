package notify

import "time"

// ReservationConfirmedEvent публикуется после успешного создания или
// подтверждения бронирования. Содержит достаточно данных для downstream
// потребителей (уведомления, аналитика) без обращения к основной БД.
type ReservationConfirmedEvent struct {
	BookingID    int64     `json:"booking_id"`
	CustomerID   int64     `json:"customer_id"`
	RestaurantID int64     `json:"restaurant_id"`
	BookingTime  time.Time `json:"booking_time"`
	GuestCount   int       `json:"guest_count"`
	TableIDs     []int64   `json:"table_ids"`
	TotalAmount  float64   `json:"total_amount"`
}

// WaitlistCalledEvent публикуется, когда запись листа ожидания вызывается
// администратором
type WaitlistCalledEvent struct {
	WaitlistID   int64 `json:"waitlist_id"`
	CustomerID   int64 `json:"customer_id"`
	RestaurantID int64 `json:"restaurant_id"`
	PartySize    int   `json:"party_size"`
}
