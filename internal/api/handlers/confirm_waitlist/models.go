package confirm_waitlist

import (
	"time"

	confirmWaitlist "github.com/tablerow/FRB-ReservationService/internal/usecase/confirm_waitlist"
)

// ConfirmWaitlistRequest HTTP request model
type ConfirmWaitlistRequest struct {
	RestaurantID  int64  `json:"restaurantId"`
	ConfirmedTime string `json:"confirmedTime"` // RFC 3339
}

// ConfirmedBookingResponse HTTP response model
type ConfirmedBookingResponse struct {
	BookingID       int64   `json:"bookingId"`
	WaitlistID      int64   `json:"waitlistId"`
	CustomerID      int64   `json:"customerId"`
	RestaurantID    int64   `json:"restaurantId"`
	TableIDs        []int64 `json:"tableIds"`
	BookingTime     string  `json:"bookingTime"`
	DurationMinutes int     `json:"durationMinutes"`
	GuestCount      int     `json:"guestCount"`
	Status          string  `json:"status"`
	DepositAmount   float64 `json:"depositAmount"`
	TotalAmount     float64 `json:"totalAmount"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ConfirmWaitlistRequest) ToUseCaseRequest(entryID int64) (*confirmWaitlist.Request, error) {
	confirmedTime, err := time.Parse(time.RFC3339, r.ConfirmedTime)
	if err != nil {
		return nil, err
	}

	return &confirmWaitlist.Request{
		EntryID:       entryID,
		RestaurantID:  r.RestaurantID,
		ConfirmedTime: confirmedTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmWaitlist.Response) *ConfirmedBookingResponse {
	return &ConfirmedBookingResponse{
		BookingID:       resp.BookingID,
		WaitlistID:      resp.WaitlistID,
		CustomerID:      resp.CustomerID,
		RestaurantID:    resp.RestaurantID,
		TableIDs:        resp.TableIDs,
		BookingTime:     resp.BookingTime.Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
		GuestCount:      resp.GuestCount,
		Status:          resp.Status,
		DepositAmount:   resp.DepositAmount,
		TotalAmount:     resp.TotalAmount,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
