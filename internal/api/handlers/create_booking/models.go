package create_booking

import (
	"time"

	createBooking "github.com/tablerow/FRB-ReservationService/internal/usecase/create_booking"
)

// LineItemRequest позиция (блюдо или услуга) в HTTP запросе
type LineItemRequest struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RestaurantID int64             `json:"restaurantId"`
	TableIDs     []int64           `json:"tableIds"`
	BookingTime  string            `json:"bookingTime"` // RFC 3339: "2026-09-05T19:00:00Z"
	GuestCount   *int              `json:"guestCount,omitempty"`
	Dishes       []LineItemRequest `json:"dishes,omitempty"`
	Services     []LineItemRequest `json:"services,omitempty"`
	Notes        *string           `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	CustomerID      int64   `json:"customerId"`
	RestaurantID    int64   `json:"restaurantId"`
	TableIDs        []int64 `json:"tableIds"`
	BookingTime     string  `json:"bookingTime"`
	DurationMinutes int     `json:"durationMinutes"`
	GuestCount      int     `json:"guestCount"`
	Status          string  `json:"status"`
	DepositAmount   float64 `json:"depositAmount"`
	TotalAmount     float64 `json:"totalAmount"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(customerID int64) (*createBooking.Request, error) {
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
		Dishes:       toLineItems(r.Dishes),
		Services:     toLineItems(r.Services),
		Notes:        r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		CustomerID:      resp.CustomerID,
		RestaurantID:    resp.RestaurantID,
		TableIDs:        resp.TableIDs,
		BookingTime:     resp.BookingTime.Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
		GuestCount:      resp.GuestCount,
		Status:          resp.Status,
		DepositAmount:   resp.DepositAmount,
		TotalAmount:     resp.TotalAmount,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}

func toLineItems(items []LineItemRequest) []createBooking.LineItem {
	result := make([]createBooking.LineItem, 0, len(items))
	for _, it := range items {
		result = append(result, createBooking.LineItem{
			ID:       it.ID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}
	return result
}
