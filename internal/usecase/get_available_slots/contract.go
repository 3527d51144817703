package get_available_slots

import (
	"context"
	"time"

	"github.com/tablerow/FRB-ReservationService/internal/domain"
)

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
}

// RestaurantRepository интерфейс репозитория ресторанов
type RestaurantRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Restaurant, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ExistsOverlap(ctx context.Context, tableID int64, start, end time.Time, excludeBookingID *int64) (bool, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
