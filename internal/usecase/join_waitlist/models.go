package join_waitlist

import (
	"time"

	"github.com/tablerow/FRB-ReservationService/internal/domain"
)

// LineItem денормализованная позиция (блюдо или услуга), выбранная заранее
type LineItem struct {
	ID       int64
	Name     string
	Price    float64
	Quantity int
}

// Request модель запроса на постановку в лист ожидания
type Request struct {
	CustomerID   int64
	RestaurantID int64
	PartySize    int
	Dishes       []LineItem // Предварительно выбранные блюда (опционально)
	Services     []LineItem // Предварительно выбранные услуги (опционально)
	TableIDs     []int64    // Предпочтительные столы (опционально)
}

// Response модель ответа с созданной записью листа ожидания
type Response struct {
	ID                   int64
	CustomerID           int64
	RestaurantID         int64
	PartySize            int
	Status               string
	Position             int // Позиция в очереди на момент постановки
	EstimatedWaitMinutes int
	JoinTime             time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func responseFromEntry(e *domain.Waitlist, position int) *Response {
	return &Response{
		ID:                   e.ID,
		CustomerID:           e.CustomerID,
		RestaurantID:         e.RestaurantID,
		PartySize:            e.PartySize,
		Status:               string(e.Status),
		Position:             position,
		EstimatedWaitMinutes: e.EstimatedWaitMinutes,
		JoinTime:             e.JoinTime,
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
}
