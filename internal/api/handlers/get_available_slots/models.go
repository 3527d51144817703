package get_available_slots

import (
	"time"

	"github.com/tablerow/FRB-ReservationService/internal/domain"
	getSlots "github.com/tablerow/FRB-ReservationService/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	TableID      int64    `json:"tableId"`
	RestaurantID int64    `json:"restaurantId"`
	Date         string   `json:"date"`
	Slots        []string `json:"slots"` // Стартовые времена в RFC 3339, по возрастанию
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlots.Response) *SlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, s.Format(time.RFC3339))
	}
	return &SlotsResponse{
		TableID:      resp.TableID,
		RestaurantID: resp.RestaurantID,
		Date:         resp.Date.Format(domain.DateFormat),
		Slots:        slots,
	}
}
