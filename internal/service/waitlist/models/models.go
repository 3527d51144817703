package models

import (
	"time"

	"github.com/tablerow/FRB-ReservationService/internal/domain"
)

// EntryResponse запись листа ожидания с актуальной позицией в очереди
type EntryResponse struct {
	ID                   int64     `json:"id"`
	CustomerID           int64     `json:"customer_id"`
	RestaurantID         int64     `json:"restaurant_id"`
	PartySize            int       `json:"party_size"`
	Status               string    `json:"status"`
	Position             int       `json:"position,omitempty"`
	EstimatedWaitMinutes int       `json:"estimated_wait_minutes"`
	JoinTime             time.Time `json:"join_time"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// FromDomainEntry конвертирует доменную запись в ответ сервиса.
// position = 0 означает, что запись больше не в очереди.
func FromDomainEntry(e *domain.Waitlist, position int) *EntryResponse {
	return &EntryResponse{
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
