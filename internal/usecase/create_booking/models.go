package create_booking

import (
	"time"

	"github.com/tablerow/FRB-ReservationService/internal/domain"
)

// LineItem денормализованная позиция (блюдо или услуга) в запросе
type LineItem struct {
	ID       int64   // ID блюда или услуги
	Name     string  // Название на момент бронирования
	Price    float64 // Цена на момент бронирования
	Quantity int
}

// Request модель запроса на создание бронирования
type Request struct {
	CustomerID   int64
	RestaurantID int64
	TableIDs     []int64   // Выбранные столы (допускается несколько)
	BookingTime  time.Time // Запрошенное время начала
	GuestCount   *int      // Размер компании
	Dishes       []LineItem
	Services     []LineItem
	Notes        *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64
	CustomerID      int64
	RestaurantID    int64
	TableIDs        []int64
	BookingTime     time.Time
	DurationMinutes int
	GuestCount      int
	Status          string
	DepositAmount   float64
	TotalAmount     float64
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func responseFromBooking(b *domain.Booking) *Response {
	return &Response{
		ID:              b.ID,
		CustomerID:      b.CustomerID,
		RestaurantID:    b.RestaurantID,
		TableIDs:        b.TableIDs,
		BookingTime:     b.BookingTime,
		DurationMinutes: b.DurationMinutes,
		GuestCount:      b.GuestCount,
		Status:          string(b.Status),
		DepositAmount:   b.DepositAmount,
		TotalAmount:     b.TotalAmount,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
