package create_booking

import (
	"context"
	"time"

	"github.com/tablerow/FRB-ReservationService/internal/domain"
	"github.com/tablerow/FRB-ReservationService/internal/integrations/notify"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	AssignTables(ctx context.Context, bookingID int64, tableIDs []int64) error
	AddDishes(ctx context.Context, bookingID int64, dishes []domain.BookingDish) error
	AddServices(ctx context.Context, bookingID int64, services []domain.BookingServiceItem) error
	ExistsOverlap(ctx context.Context, tableID int64, start, end time.Time, excludeBookingID *int64) (bool, error)
}

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Table, error)
}

// RestaurantRepository интерфейс репозитория ресторанов
type RestaurantRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Restaurant, error)
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier best-effort издатель уведомлений; ошибки публикации не влияют
// на результат создания бронирования
type Notifier interface {
	ReservationConfirmed(ctx context.Context, event notify.ReservationConfirmedEvent)
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
