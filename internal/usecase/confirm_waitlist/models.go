package confirm_waitlist

import (
	"time"

	"github.com/tablerow/FRB-ReservationService/internal/domain"
)

// Request модель запроса на подтверждение записи листа ожидания
type Request struct {
	EntryID       int64     // ID записи листа ожидания
	RestaurantID  int64     // Ресторан, от имени которого идет подтверждение
	ConfirmedTime time.Time // Согласованное время бронирования
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID       int64
	WaitlistID      int64
	CustomerID      int64
	RestaurantID    int64
	TableIDs        []int64
	BookingTime     time.Time
	DurationMinutes int
	GuestCount      int
	Status          string
	DepositAmount   float64
	TotalAmount     float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func responseFromBooking(b *domain.Booking, waitlistID int64) *Response {
	return &Response{
		BookingID:       b.ID,
		WaitlistID:      waitlistID,
		CustomerID:      b.CustomerID,
		RestaurantID:    b.RestaurantID,
		TableIDs:        b.TableIDs,
		BookingTime:     b.BookingTime,
		DurationMinutes: b.DurationMinutes,
		GuestCount:      b.GuestCount,
		Status:          string(b.Status),
		DepositAmount:   b.DepositAmount,
		TotalAmount:     b.TotalAmount,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
