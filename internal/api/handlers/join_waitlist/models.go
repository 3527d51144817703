package join_waitlist

import (
	"time"

	joinWaitlist "github.com/tablerow/FRB-ReservationService/internal/usecase/join_waitlist"
)

// LineItemRequest предварительно выбранная позиция в HTTP запросе
type LineItemRequest struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// JoinWaitlistRequest HTTP request model
type JoinWaitlistRequest struct {
	RestaurantID int64             `json:"restaurantId"`
	PartySize    int               `json:"partySize"`
	Dishes       []LineItemRequest `json:"dishes,omitempty"`
	Services     []LineItemRequest `json:"services,omitempty"`
	TableIDs     []int64           `json:"tableIds,omitempty"`
}

// WaitlistEntryResponse HTTP response model
type WaitlistEntryResponse struct {
	ID                   int64  `json:"id"`
	CustomerID           int64  `json:"customerId"`
	RestaurantID         int64  `json:"restaurantId"`
	PartySize            int    `json:"partySize"`
	Status               string `json:"status"`
	Position             int    `json:"position"`
	EstimatedWaitMinutes int    `json:"estimatedWaitMinutes"`
	JoinTime             string `json:"joinTime"`
	CreatedAt            string `json:"createdAt"`
	UpdatedAt            string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *JoinWaitlistRequest) ToUseCaseRequest(customerID int64) *joinWaitlist.Request {
	return &joinWaitlist.Request{
		CustomerID:   customerID,
		RestaurantID: r.RestaurantID,
		PartySize:    r.PartySize,
		Dishes:       toLineItems(r.Dishes),
		Services:     toLineItems(r.Services),
		TableIDs:     r.TableIDs,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *joinWaitlist.Response) *WaitlistEntryResponse {
	return &WaitlistEntryResponse{
		ID:                   resp.ID,
		CustomerID:           resp.CustomerID,
		RestaurantID:         resp.RestaurantID,
		PartySize:            resp.PartySize,
		Status:               resp.Status,
		Position:             resp.Position,
		EstimatedWaitMinutes: resp.EstimatedWaitMinutes,
		JoinTime:             resp.JoinTime.Format(time.RFC3339),
		CreatedAt:            resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            resp.UpdatedAt.Format(time.RFC3339),
	}
}

func toLineItems(items []LineItemRequest) []joinWaitlist.LineItem {
	result := make([]joinWaitlist.LineItem, 0, len(items))
	for _, it := range items {
		result = append(result, joinWaitlist.LineItem{
			ID:       it.ID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}
	return result
}
