package validate_booking_update

import (
	"context"

	"github.com/tablerow/FRB-ReservationService/internal/domain"
	createBooking "github.com/tablerow/FRB-ReservationService/internal/usecase/create_booking"
)

// ConflictValidator интерфейс оркестратора проверки конфликтов
type ConflictValidator interface {
	Validate(ctx context.Context, req *createBooking.Request, excludeBookingID *int64) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
