package confirm_waitlist

import (
	"context"
	"time"

	"github.com/tablerow/FRB-ReservationService/internal/domain"
	"github.com/tablerow/FRB-ReservationService/internal/integrations/notify"
	"github.com/tablerow/FRB-ReservationService/internal/usecase/create_booking"
)

// ConflictValidator полная проверка конфликтов бронирования; реализуется
// create_booking.UseCase. Запускается внутри транзакции подтверждения -
// запросы хранилища идут через executor из контекста.
type ConflictValidator interface {
	Validate(ctx context.Context, req *create_booking.Request, excludeBookingID *int64) error
}

// WaitlistRepository интерфейс репозитория листа ожидания
type WaitlistRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Waitlist, error)
	GetDishes(ctx context.Context, waitlistID int64) ([]domain.WaitlistDish, error)
	GetServices(ctx context.Context, waitlistID int64) ([]domain.WaitlistServiceItem, error)
	GetTableIDs(ctx context.Context, waitlistID int64) ([]int64, error)
	UpdateStatusIf(ctx context.Context, id int64, from, to domain.WaitlistStatus) (bool, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	AssignTables(ctx context.Context, bookingID int64, tableIDs []int64) error
	AddDishes(ctx context.Context, bookingID int64, dishes []domain.BookingDish) error
	AddServices(ctx context.Context, bookingID int64, services []domain.BookingServiceItem) error
}

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Table, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier best-effort издатель уведомлений
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
