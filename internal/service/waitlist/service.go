package waitlist

import (
	"context"
	"errors"
	"fmt"

	"github.com/tablerow/FRB-ReservationService/internal/domain"
	waitlistRepo "github.com/tablerow/FRB-ReservationService/internal/infra/storage/waitlist"
	"github.com/tablerow/FRB-ReservationService/internal/integrations/notify"
	"github.com/tablerow/FRB-ReservationService/internal/service/waitlist/models"
)

// Service сервис чтения и управления очередью листа ожидания.
// Позиция и оценка ожидания информационные: при конкурирующих изменениях
// очереди допускается кратковременно устаревшее значение.
type Service struct {
	waitlistRepo WaitlistRepository
	notifier     Notifier
	logger       Logger
}

// NewService создает новый экземпляр сервиса листа ожидания
func NewService(waitlistRepo WaitlistRepository, notifier Notifier, logger Logger) *Service {
	return &Service{
		waitlistRepo: waitlistRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

// GetEntry получает запись листа ожидания с пересчитанной позицией в очереди
func (s *Service) GetEntry(ctx context.Context, entryID int64) (*models.EntryResponse, error) {
	s.logger.Info("GetEntry: fetching waitlist entry id=%d", entryID)

	entry, err := s.getEntry(ctx, entryID)
	if err != nil {
		return nil, err
	}

	position := 0
	if entry.IsWaiting() {
		position, err = s.position(ctx, entry)
		if err != nil {
			return nil, err
		}
	}

	return models.FromDomainEntry(entry, position), nil
}

// QueuePosition пересчитывает 1-индексированную позицию записи среди WAITING
// записей ее ресторана, упорядоченных по времени присоединения
func (s *Service) QueuePosition(ctx context.Context, entryID int64) (int, error) {
	entry, err := s.getEntry(ctx, entryID)
	if err != nil {
		return 0, err
	}
	return s.position(ctx, entry)
}

// Cancel отменяет запись листа ожидания. Запись никогда не удаляется -
// статус переводится в CANCELLED условным обновлением.
func (s *Service) Cancel(ctx context.Context, entryID, customerID int64) error {
	s.logger.Info("Cancel: cancelling waitlist entry id=%d by customer=%d", entryID, customerID)

	entry, err := s.getEntry(ctx, entryID)
	if err != nil {
		return err
	}
	if entry.CustomerID != customerID {
		s.logger.Warn("Cancel: entry id=%d belongs to customer=%d, not %d", entryID, entry.CustomerID, customerID)
		return ErrNotOwner
	}
	if !entry.IsWaiting() {
		return domain.NewConflict(domain.ConflictInvalidWaitlistState,
			"only WAITING entries can be cancelled")
	}

	updated, err := s.waitlistRepo.UpdateStatusIf(ctx, entryID, domain.WaitlistWaiting, domain.WaitlistCancelled)
	if err != nil {
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}
	if !updated {
		// Статус успел измениться между чтением и обновлением
		return domain.NewConflict(domain.ConflictInvalidWaitlistState,
			"only WAITING entries can be cancelled")
	}

	s.logger.Info("Cancel: entry id=%d cancelled", entryID)
	return nil
}

// CallNext вызывает самую раннюю WAITING запись ресторана: переводит ее
// в CALLED и возвращает. Пустая очередь - не ошибка, возвращается nil.
// Условное обновление гарантирует, что два администратора не вызовут
// одну запись дважды: проигравший берет следующую.
func (s *Service) CallNext(ctx context.Context, restaurantID int64) (*models.EntryResponse, error) {
	s.logger.Info("CallNext: calling next entry for restaurant=%d", restaurantID)

	for {
		entry, err := s.waitlistRepo.FirstWaiting(ctx, restaurantID)
		if err != nil {
			if errors.Is(err, waitlistRepo.ErrEntryNotFound) {
				s.logger.Info("CallNext: waitlist is empty for restaurant=%d", restaurantID)
				return nil, nil
			}
			return nil, fmt.Errorf("%w: CallNext - repository error: %v", ErrInternal, err)
		}

		updated, err := s.waitlistRepo.UpdateStatusIf(ctx, entry.ID, domain.WaitlistWaiting, domain.WaitlistCalled)
		if err != nil {
			return nil, fmt.Errorf("%w: CallNext - repository error: %v", ErrInternal, err)
		}
		if !updated {
			continue
		}

		entry.Status = domain.WaitlistCalled
		s.logger.Info("CallNext: entry id=%d called for restaurant=%d", entry.ID, restaurantID)

		s.notifier.WaitlistCalled(ctx, notify.WaitlistCalledEvent{
			WaitlistID:   entry.ID,
			CustomerID:   entry.CustomerID,
			RestaurantID: entry.RestaurantID,
			PartySize:    entry.PartySize,
		})

		return models.FromDomainEntry(entry, 0), nil
	}
}

func (s *Service) getEntry(ctx context.Context, entryID int64) (*domain.Waitlist, error) {
	if entryID <= 0 {
		return nil, fmt.Errorf("%w: entryID must be positive", ErrInvalidInput)
	}

	entry, err := s.waitlistRepo.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, waitlistRepo.ErrEntryNotFound) {
			s.logger.Warn("waitlist entry id=%d not found", entryID)
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return entry, nil
}

// position возвращает 1-индексированный ранг записи среди WAITING записей
// ее ресторана. Если запись не нашлась в выборке (гонка со смены статуса),
// возвращает 1.
func (s *Service) position(ctx context.Context, entry *domain.Waitlist) (int, error) {
	waiting, err := s.waitlistRepo.ListWaiting(ctx, entry.RestaurantID)
	if err != nil {
		return 0, fmt.Errorf("%w: position - repository error: %v", ErrInternal, err)
	}
	for i, e := range waiting {
		if e.ID == entry.ID {
			return i + 1, nil
		}
	}
	return 1, nil
}
