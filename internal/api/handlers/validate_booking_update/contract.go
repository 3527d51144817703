package validate_booking_update

import (
	"context"

	createBooking "github.com/tablerow/FRB-ReservationService/internal/usecase/create_booking"
)

type ValidateBookingUpdateUseCase interface {
	Execute(ctx context.Context, bookingID int64, req *createBooking.Request, customerID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
