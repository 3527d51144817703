package join_waitlist

import (
	"context"
	"time"

	"github.com/tablerow/FRB-ReservationService/internal/domain"
)

// WaitlistRepository интерфейс репозитория листа ожидания
type WaitlistRepository interface {
	Create(ctx context.Context, entry *domain.Waitlist) (*domain.Waitlist, error)
	ExistsWaiting(ctx context.Context, customerID, restaurantID int64) (bool, error)
	CountWaiting(ctx context.Context, restaurantID int64) (int, error)
	AddDishes(ctx context.Context, waitlistID int64, dishes []domain.WaitlistDish) error
	AddServices(ctx context.Context, waitlistID int64, services []domain.WaitlistServiceItem) error
	AddTables(ctx context.Context, waitlistID int64, tableIDs []int64) error
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
