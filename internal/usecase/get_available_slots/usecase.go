package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tablerow/FRB-ReservationService/internal/domain"
	restaurantRepo "github.com/tablerow/FRB-ReservationService/internal/infra/storage/restaurant"
	tableRepo "github.com/tablerow/FRB-ReservationService/internal/infra/storage/table"
)

// UseCase use case получения свободных слотов стола на день
type UseCase struct {
	tableRepo      TableRepository
	restaurantRepo RestaurantRepository
	bookingRepo    BookingRepository
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tableRepo TableRepository,
	restaurantRepo RestaurantRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		tableRepo:      tableRepo,
		restaurantRepo: restaurantRepo,
		bookingRepo:    bookingRepo,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute перечисляет часовые кандидаты в пределах рабочих часов ресторана
// и оставляет только те, что не пересекаются с существующими бронированиями.
// Для стола в статусе OCCUPIED или MAINTENANCE список всегда пуст.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: table=%d, date=%s", req.TableID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	table, err := uc.tableRepo.GetByID(ctx, req.TableID)
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			uc.logger.Warn("GetAvailableSlots: table id=%d not found", req.TableID)
			return nil, ErrTableNotFound
		}
		return nil, fmt.Errorf("%w: failed to get table: %v", ErrInternal, err)
	}

	restaurant, err := uc.restaurantRepo.GetByID(ctx, table.RestaurantID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			uc.logger.Warn("GetAvailableSlots: restaurant id=%d not found", table.RestaurantID)
			return nil, ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}

	response := &Response{
		TableID:      table.ID,
		RestaurantID: table.RestaurantID,
		Date:         req.Date,
		Slots:        []time.Time{},
	}

	// Статус стола блокирует все слоты независимо от бронирований
	if !table.IsBookable() {
		uc.logger.Info("GetAvailableSlots: table id=%d is %s, no slots", table.ID, table.Status)
		return response, nil
	}

	// Для прошедших дат слотов нет
	if isDateInPast(req.Date, uc.timeProvider.Now()) {
		return response, nil
	}

	for _, candidate := range generateCandidateTimes(req.Date, restaurant.OpeningHours) {
		start, end := overlapWindow(candidate)
		overlaps, err := uc.bookingRepo.ExistsOverlap(ctx, table.ID, start, end, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to check overlap: %v", ErrInternal, err)
		}
		if !overlaps {
			response.Slots = append(response.Slots, candidate)
		}
	}

	uc.logger.Info("GetAvailableSlots: %d free slots for table=%d, date=%s",
		len(response.Slots), table.ID, req.Date.Format(domain.DateFormat))

	return response, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TableID <= 0 {
		return fmt.Errorf("%w: tableID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
