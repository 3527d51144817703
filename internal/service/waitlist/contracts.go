package waitlist

import (
	"context"

	"github.com/tablerow/FRB-ReservationService/internal/domain"
	"github.com/tablerow/FRB-ReservationService/internal/integrations/notify"
)

// WaitlistRepository интерфейс репозитория листа ожидания
type WaitlistRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Waitlist, error)
	ListWaiting(ctx context.Context, restaurantID int64) ([]*domain.Waitlist, error)
	FirstWaiting(ctx context.Context, restaurantID int64) (*domain.Waitlist, error)
	UpdateStatusIf(ctx context.Context, id int64, from, to domain.WaitlistStatus) (bool, error)
}

// Notifier best-effort издатель уведомлений
type Notifier interface {
	WaitlistCalled(ctx context.Context, event notify.WaitlistCalledEvent)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
