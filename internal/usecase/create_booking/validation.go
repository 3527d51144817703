package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/tablerow/FRB-ReservationService/internal/domain"
	"github.com/tablerow/FRB-ReservationService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}
	if req.RestaurantID <= 0 {
		return fmt.Errorf("%w: restaurantID must be positive", ErrInvalidInput)
	}
	for _, tableID := range req.TableIDs {
		if tableID <= 0 {
			return fmt.Errorf("%w: tableID must be positive", ErrInvalidInput)
		}
	}
	return nil
}

// validateBookingTime проверяет запрошенное время против окна бронирования.
// Границы включительные: ровно now+30min и ровно now+30days принимаются.
func validateBookingTime(requested time.Time, now time.Time) error {
	if requested.IsZero() {
		return domain.NewConflict(domain.ConflictInvalidTime, "booking time is required")
	}
	if !requested.After(now) {
		return domain.NewConflict(domain.ConflictPastTime, "booking time must be in the future")
	}
	if requested.Before(now.Add(domain.MinAdvanceMinutes * time.Minute)) {
		return domain.NewConflict(domain.ConflictTooSoon,
			"booking must be made at least %d minutes in advance", domain.MinAdvanceMinutes)
	}
	if requested.After(now.AddDate(0, 0, domain.MaxAdvanceDays)) {
		return domain.NewConflict(domain.ConflictTooFar,
			"booking cannot be made more than %d days in advance", domain.MaxAdvanceDays)
	}
	return nil
}

// validateOperatingHours проверяет, что время попадает в рабочие часы ресторана.
// Обе границы включительные: время ровно в открытие или ровно в закрытие проходит.
func validateOperatingHours(requested time.Time, openingHours *string) error {
	open, close := parseOpeningHours(openingHours)

	timeOfDay := types.NewTimeString(requested)
	if timeOfDay.IsBefore(open) || timeOfDay.IsAfter(close) {
		return domain.NewConflict(domain.ConflictOutsideHours,
			"restaurant operates from %s to %s", open, close)
	}
	return nil
}

// parseOpeningHours разбирает строку "HH:mm-HH:mm".
// Отсутствующее или некорректное значение заменяется на окно по умолчанию -
// поведение идентично строке "10:00-22:00".
func parseOpeningHours(hours *string) (open, close types.TimeString) {
	defaultOpen, defaultClose := splitHours(domain.DefaultOpeningHours)

	if hours == nil {
		return defaultOpen, defaultClose
	}

	parts := strings.SplitN(strings.TrimSpace(*hours), "-", 2)
	if len(parts) != 2 {
		return defaultOpen, defaultClose
	}

	parsedOpen, err := types.NewTimeStringFromString(strings.TrimSpace(parts[0]))
	if err != nil {
		return defaultOpen, defaultClose
	}
	parsedClose, err := types.NewTimeStringFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		return defaultOpen, defaultClose
	}
	return parsedOpen, parsedClose
}

func splitHours(hours string) (types.TimeString, types.TimeString) {
	parts := strings.SplitN(hours, "-", 2)
	return types.TimeString(parts[0]), types.TimeString(parts[1])
}

// validateTableStatus отклоняет столы, статус которых блокирует бронирование
// независимо от времени. RESERVED проверяется только по пересечению интервалов.
func validateTableStatus(table *domain.Table) error {
	switch table.Status {
	case domain.TableOccupied:
		return domain.NewConflict(domain.ConflictTableOccupied,
			"table %s currently in use", table.Name)
	case domain.TableMaintenance:
		return domain.NewConflict(domain.ConflictTableMaintenance,
			"table %s under maintenance", table.Name)
	default:
		return nil
	}
}

// validateGuestCount проверяет размер компании для одного бронирования
func validateGuestCount(guestCount *int) error {
	if guestCount == nil {
		return domain.NewConflict(domain.ConflictGuestCountRequired, "guest count is required")
	}
	if *guestCount < domain.MinGuestCount || *guestCount > domain.MaxGuestCount {
		return domain.NewConflict(domain.ConflictGuestCountInvalid,
			"guest count must be between %d and %d", domain.MinGuestCount, domain.MaxGuestCount)
	}
	return nil
}

// validateCapacity проверяет, что суммарная вместимость выбранных столов
// покрывает размер компании
func validateCapacity(tables []*domain.Table, guestCount int) error {
	total := 0
	for _, t := range tables {
		total += t.Capacity
	}
	if total < guestCount {
		return domain.NewConflict(domain.ConflictCapacityExceeded,
			"selected tables seat %d guests, %d requested", total, guestCount)
	}
	return nil
}

// overlapWindow возвращает блокируемое окно вокруг запрошенного времени:
// [t - buffer, t + duration + buffer]
func overlapWindow(requested time.Time) (start, end time.Time) {
	start = requested.Add(-domain.BufferMinutes * time.Minute)
	end = requested.Add((domain.ReservationDurationMinutes + domain.BufferMinutes) * time.Minute)
	return start, end
}
