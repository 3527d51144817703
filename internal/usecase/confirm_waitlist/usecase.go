package confirm_waitlist

import (
	"context"
	"errors"
	"fmt"

	"github.com/tablerow/FRB-ReservationService/internal/domain"
	waitlistRepo "github.com/tablerow/FRB-ReservationService/internal/infra/storage/waitlist"
	"github.com/tablerow/FRB-ReservationService/internal/integrations/notify"
	"github.com/tablerow/FRB-ReservationService/internal/usecase/create_booking"
)

// UseCase use case подтверждения записи листа ожидания в бронирование.
// Либо полностью успешен (бронирование создано, запись SEATED), либо
// полностью неуспешен - запись остается WAITING и попытку можно повторить
// с другим временем.
type UseCase struct {
	waitlistRepo WaitlistRepository
	bookingRepo  BookingRepository
	tableRepo    TableRepository
	validator    ConflictValidator
	txManager    TransactionManager
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	waitlistRepo WaitlistRepository,
	bookingRepo BookingRepository,
	tableRepo TableRepository,
	validator ConflictValidator,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		waitlistRepo: waitlistRepo,
		bookingRepo:  bookingRepo,
		tableRepo:    tableRepo,
		validator:    validator,
		txManager:    txManager,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute превращает WAITING запись в подтвержденное бронирование на
// согласованное время. Полная проверка конфликтов выполняется заново
// внутри сериализуемой транзакции; любая ошибка откатывает транзакцию
// целиком и запись остается WAITING.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmWaitlist: entry=%d, restaurant=%d, time=%s",
		req.EntryID, req.RestaurantID, req.ConfirmedTime.Format("2006-01-02 15:04"))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ConfirmWaitlist: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		entry, err := uc.waitlistRepo.GetByID(txCtx, req.EntryID)
		if err != nil {
			if errors.Is(err, waitlistRepo.ErrEntryNotFound) {
				return ErrEntryNotFound
			}
			return fmt.Errorf("%w: failed to get waitlist entry: %v", ErrInternal, err)
		}

		if !entry.IsWaiting() {
			return domain.NewConflict(domain.ConflictInvalidWaitlistState,
				"only WAITING entries can be confirmed")
		}
		if entry.RestaurantID != req.RestaurantID {
			return ErrNotOwner
		}
		if !req.ConfirmedTime.After(uc.timeProvider.Now()) {
			return domain.NewConflict(domain.ConflictPastTime,
				"confirmed time must be in the future")
		}

		bookingReq, err := uc.synthesizeRequest(txCtx, entry, req)
		if err != nil {
			return err
		}

		// Повторная полная проверка конфликтов; выполняется в этой же
		// транзакции через executor из контекста
		if err := uc.validator.Validate(txCtx, bookingReq, nil); err != nil {
			uc.logger.Warn("ConfirmWaitlist: conflict validation failed: %v", err)
			return err
		}

		tables, err := uc.tableRepo.GetByIDs(txCtx, bookingReq.TableIDs)
		if err != nil {
			return fmt.Errorf("%w: failed to get tables: %v", ErrInternal, err)
		}
		deposit := 0.0
		for _, t := range tables {
			deposit += t.DepositAmount
		}

		booking := &domain.Booking{
			CustomerID:      entry.CustomerID,
			RestaurantID:    entry.RestaurantID,
			BookingTime:     req.ConfirmedTime,
			DurationMinutes: domain.ReservationDurationMinutes,
			GuestCount:      entry.PartySize,
			Status:          domain.StatusConfirmed,
			DepositAmount:   deposit,
			TotalAmount:     deposit + lineItemsTotal(bookingReq.Dishes) + lineItemsTotal(bookingReq.Services),
			TableIDs:        bookingReq.TableIDs,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
		if err := uc.bookingRepo.AssignTables(txCtx, created.ID, bookingReq.TableIDs); err != nil {
			return fmt.Errorf("%w: failed to assign tables: %v", ErrInternal, err)
		}
		if err := uc.bookingRepo.AddDishes(txCtx, created.ID, dishLines(created.ID, bookingReq.Dishes)); err != nil {
			return fmt.Errorf("%w: failed to copy dishes: %v", ErrInternal, err)
		}
		if err := uc.bookingRepo.AddServices(txCtx, created.ID, serviceLines(created.ID, bookingReq.Services)); err != nil {
			return fmt.Errorf("%w: failed to copy services: %v", ErrInternal, err)
		}

		// Условный переход WAITING -> SEATED; false означает, что статус
		// записи успел измениться конкурирующим вызовом
		updated, err := uc.waitlistRepo.UpdateStatusIf(txCtx, entry.ID, domain.WaitlistWaiting, domain.WaitlistSeated)
		if err != nil {
			return fmt.Errorf("%w: failed to update waitlist status: %v", ErrInternal, err)
		}
		if !updated {
			return domain.NewConflict(domain.ConflictInvalidWaitlistState,
				"only WAITING entries can be confirmed")
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("ConfirmWaitlist: entry id=%d seated, booking id=%d created", req.EntryID, result.ID)

	uc.notifier.ReservationConfirmed(ctx, notify.ReservationConfirmedEvent{
		BookingID:    result.ID,
		CustomerID:   result.CustomerID,
		RestaurantID: result.RestaurantID,
		BookingTime:  result.BookingTime,
		GuestCount:   result.GuestCount,
		TableIDs:     result.TableIDs,
		TotalAmount:  result.TotalAmount,
	})

	return responseFromBooking(result, req.EntryID), nil
}

// synthesizeRequest собирает запрос на бронирование из записи листа ожидания:
// клиент, ресторан, размер компании и все предварительно выбранные позиции.
func (uc *UseCase) synthesizeRequest(ctx context.Context, entry *domain.Waitlist, req *Request) (*create_booking.Request, error) {
	tableIDs, err := uc.waitlistRepo.GetTableIDs(ctx, entry.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get preselected tables: %v", ErrInternal, err)
	}
	dishes, err := uc.waitlistRepo.GetDishes(ctx, entry.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get preselected dishes: %v", ErrInternal, err)
	}
	services, err := uc.waitlistRepo.GetServices(ctx, entry.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get preselected services: %v", ErrInternal, err)
	}

	guestCount := entry.PartySize
	return &create_booking.Request{
		CustomerID:   entry.CustomerID,
		RestaurantID: entry.RestaurantID,
		TableIDs:     tableIDs,
		BookingTime:  req.ConfirmedTime,
		GuestCount:   &guestCount,
		Dishes:       dishItems(dishes),
		Services:     serviceItems(services),
	}, nil
}

func validateRequest(req *Request) error {
	if req.EntryID <= 0 {
		return fmt.Errorf("%w: entryID must be positive", ErrInvalidInput)
	}
	if req.RestaurantID <= 0 {
		return fmt.Errorf("%w: restaurantID must be positive", ErrInvalidInput)
	}
	if req.ConfirmedTime.IsZero() {
		return fmt.Errorf("%w: confirmedTime is required", ErrInvalidInput)
	}
	return nil
}

func dishItems(dishes []domain.WaitlistDish) []create_booking.LineItem {
	items := make([]create_booking.LineItem, 0, len(dishes))
	for _, d := range dishes {
		items = append(items, create_booking.LineItem{
			ID:       d.DishID,
			Name:     d.Name,
			Price:    d.Price,
			Quantity: d.Quantity,
		})
	}
	return items
}

func serviceItems(services []domain.WaitlistServiceItem) []create_booking.LineItem {
	items := make([]create_booking.LineItem, 0, len(services))
	for _, s := range services {
		items = append(items, create_booking.LineItem{
			ID:       s.ServiceID,
			Name:     s.Name,
			Price:    s.Price,
			Quantity: s.Quantity,
		})
	}
	return items
}

func lineItemsTotal(items []create_booking.LineItem) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

func dishLines(bookingID int64, items []create_booking.LineItem) []domain.BookingDish {
	lines := make([]domain.BookingDish, 0, len(items))
	for _, it := range items {
		lines = append(lines, domain.BookingDish{
			BookingID: bookingID,
			DishID:    it.ID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}
	return lines
}

func serviceLines(bookingID int64, items []create_booking.LineItem) []domain.BookingServiceItem {
	lines := make([]domain.BookingServiceItem, 0, len(items))
	for _, it := range items {
		lines = append(lines, domain.BookingServiceItem{
			BookingID: bookingID,
			ServiceID: it.ID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}
	return lines
}
