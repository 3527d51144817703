package get_waitlist_entry

import (
	"context"

	"github.com/tablerow/FRB-ReservationService/internal/service/waitlist/models"
)

type WaitlistService interface {
	GetEntry(ctx context.Context, entryID int64) (*models.EntryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
