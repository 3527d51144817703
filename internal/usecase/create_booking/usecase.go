package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/tablerow/FRB-ReservationService/internal/domain"
	customerRepo "github.com/tablerow/FRB-ReservationService/internal/infra/storage/customer"
	restaurantRepo "github.com/tablerow/FRB-ReservationService/internal/infra/storage/restaurant"
	"github.com/tablerow/FRB-ReservationService/internal/integrations/notify"
)

// UseCase use case создания бронирования. Он же выполняет полную проверку
// конфликтов (оркестратор) - проверку переиспользуют usecase обновления
// и подтверждения листа ожидания через метод Validate.
type UseCase struct {
	bookingRepo    BookingRepository
	tableRepo      TableRepository
	restaurantRepo RestaurantRepository
	customerRepo   CustomerRepository
	txManager      TransactionManager
	notifier       Notifier
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	tableRepo TableRepository,
	restaurantRepo RestaurantRepository,
	customerRepo CustomerRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		tableRepo:      tableRepo,
		restaurantRepo: restaurantRepo,
		customerRepo:   customerRepo,
		txManager:      txManager,
		notifier:       notifier,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Validate выполняет последовательную fail-fast проверку конфликтов
// бронирования: сущности, окно времени, рабочие часы, статусы столов,
// вместимость, пересечения интервалов. Первая ошибка прерывает проверку.
//
// excludeBookingID исключает одно бронирование из проверки пересечений
// (используется при валидации обновления).
//
// Если в контексте есть активная транзакция, запросы к хранилищу выполняются
// в ней - этим пользуется confirm_waitlist, запуская Validate внутри своей
// сериализуемой транзакции.
func (uc *UseCase) Validate(ctx context.Context, req *Request, excludeBookingID *int64) error {
	if err := validateRequest(req); err != nil {
		return err
	}

	now := uc.timeProvider.Now()

	// 1. Клиент существует
	if _, err := uc.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			return ErrCustomerNotFound
		}
		return fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	// 2. Ресторан существует
	restaurant, err := uc.restaurantRepo.GetByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			return ErrRestaurantNotFound
		}
		return fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}

	// 3. Выбран хотя бы один стол
	if len(req.TableIDs) == 0 {
		return domain.NewConflict(domain.ConflictNoTableSelected, "at least one table must be selected")
	}

	// 4. Все столы существуют и принадлежат ресторану
	tables, err := uc.fetchTables(ctx, req)
	if err != nil {
		return err
	}

	// 5. Окно времени бронирования
	if err := validateBookingTime(req.BookingTime, now); err != nil {
		return err
	}

	// 6. Рабочие часы ресторана
	if err := validateOperatingHours(req.BookingTime, restaurant.OpeningHours); err != nil {
		return err
	}

	// 7. Статусы столов
	for _, t := range tables {
		if err := validateTableStatus(t); err != nil {
			return err
		}
	}

	// 8. Размер компании и вместимость
	if err := validateGuestCount(req.GuestCount); err != nil {
		return err
	}
	if err := validateCapacity(tables, *req.GuestCount); err != nil {
		return err
	}

	// 9. Пересечения с существующими бронированиями по каждому столу
	start, end := overlapWindow(req.BookingTime)
	for _, t := range tables {
		overlaps, err := uc.bookingRepo.ExistsOverlap(ctx, t.ID, start, end, excludeBookingID)
		if err != nil {
			return fmt.Errorf("%w: failed to check overlap for table %d: %v", ErrInternal, t.ID, err)
		}
		if overlaps {
			return domain.NewConflict(domain.ConflictTimeOverlap,
				"table %s is already reserved around this time", t.Name)
		}
	}

	return nil
}

// Execute создает бронирование. Проверка конфликтов и вставка выполняются
// в одной сериализуемой транзакции: две конкурирующие заявки на один стол
// и пересекающееся время не могут обе пройти проверку.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, restaurant=%d, tables=%v, time=%s",
		req.CustomerID, req.RestaurantID, req.TableIDs, req.BookingTime.Format("2006-01-02 15:04"))

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.Validate(txCtx, req, nil); err != nil {
			uc.logger.Warn("CreateBooking: validation failed: %v", err)
			return err
		}

		tables, err := uc.fetchTables(txCtx, req)
		if err != nil {
			return err
		}

		deposit := 0.0
		for _, t := range tables {
			deposit += t.DepositAmount
		}

		booking := &domain.Booking{
			CustomerID:      req.CustomerID,
			RestaurantID:    req.RestaurantID,
			BookingTime:     req.BookingTime,
			DurationMinutes: domain.ReservationDurationMinutes,
			GuestCount:      *req.GuestCount,
			Status:          domain.StatusConfirmed,
			DepositAmount:   deposit,
			TotalAmount:     deposit + lineItemsTotal(req.Dishes) + lineItemsTotal(req.Services),
			Notes:           req.Notes,
			TableIDs:        req.TableIDs,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
		if err := uc.bookingRepo.AssignTables(txCtx, created.ID, req.TableIDs); err != nil {
			return fmt.Errorf("%w: failed to assign tables: %v", ErrInternal, err)
		}
		if err := uc.bookingRepo.AddDishes(txCtx, created.ID, dishLines(created.ID, req.Dishes)); err != nil {
			return fmt.Errorf("%w: failed to add dishes: %v", ErrInternal, err)
		}
		if err := uc.bookingRepo.AddServices(txCtx, created.ID, serviceLines(created.ID, req.Services)); err != nil {
			return fmt.Errorf("%w: failed to add services: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// Уведомление best-effort: ошибки публикации логируются внутри notifier
	// и никогда не влияют на результат
	uc.notifier.ReservationConfirmed(ctx, notify.ReservationConfirmedEvent{
		BookingID:    result.ID,
		CustomerID:   result.CustomerID,
		RestaurantID: result.RestaurantID,
		BookingTime:  result.BookingTime,
		GuestCount:   result.GuestCount,
		TableIDs:     result.TableIDs,
		TotalAmount:  result.TotalAmount,
	})

	return responseFromBooking(result), nil
}

// fetchTables загружает столы запроса и проверяет существование
// и принадлежность ресторану
func (uc *UseCase) fetchTables(ctx context.Context, req *Request) ([]*domain.Table, error) {
	tables, err := uc.tableRepo.GetByIDs(ctx, req.TableIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get tables: %v", ErrInternal, err)
	}
	if len(tables) != len(uniqueIDs(req.TableIDs)) {
		return nil, ErrTableNotFound
	}
	for _, t := range tables {
		if t.RestaurantID != req.RestaurantID {
			return nil, ErrTableNotInRestaurant
		}
	}
	return tables, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}

func lineItemsTotal(items []LineItem) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

func dishLines(bookingID int64, items []LineItem) []domain.BookingDish {
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

func serviceLines(bookingID int64, items []LineItem) []domain.BookingServiceItem {
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
