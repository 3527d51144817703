package validate_booking_update

import (
	"time"

	createBooking "github.com/tablerow/FRB-ReservationService/internal/usecase/create_booking"
)

// ValidateBookingUpdateRequest HTTP request model: новое состояние
// бронирования, которое нужно проверить на конфликты
type ValidateBookingUpdateRequest struct {
	RestaurantID int64   `json:"restaurantId"`
	TableIDs     []int64 `json:"tableIds"`
	BookingTime  string  `json:"bookingTime"` // RFC 3339
	GuestCount   *int    `json:"guestCount,omitempty"`
}

// ValidateBookingUpdateResponse HTTP response model
type ValidateBookingUpdateResponse struct {
	Valid bool `json:"valid"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ValidateBookingUpdateRequest) ToUseCaseRequest(customerID int64) (*createBooking.Request, error) {
	bookingTime, err := time.Parse(time.RFC3339, r.BookingTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerID:   customerID,
		RestaurantID: r.RestaurantID,
		TableIDs:     r.TableIDs,
		BookingTime:  bookingTime,
		GuestCount:   r.GuestCount,
	}, nil
}
