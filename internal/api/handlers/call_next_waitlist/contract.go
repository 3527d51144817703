package call_next_waitlist

import (
	"context"

	"github.com/tablerow/FRB-ReservationService/internal/service/waitlist/models"
)

type WaitlistService interface {
	CallNext(ctx context.Context, restaurantID int64) (*models.EntryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
