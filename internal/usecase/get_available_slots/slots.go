package get_available_slots

import (
	"strings"
	"time"

	"github.com/tablerow/FRB-ReservationService/internal/domain"
	"github.com/tablerow/FRB-ReservationService/pkg/types"
)

// generateCandidateTimes генерирует часовые стартовые времена в пределах
// рабочих часов на указанную дату. Последний кандидат выбирается так, чтобы
// двухчасовое бронирование успело завершиться до закрытия включительно.
//
// Пример для 10:00-22:00: кандидаты 10:00, 11:00, ..., 20:00
// (20:00 + 2 часа = 22:00 - ровно к закрытию).
func generateCandidateTimes(date time.Time, openingHours *string) []time.Time {
	open, close := parseOpeningHours(openingHours)

	openMinutes, err := open.Minutes()
	if err != nil {
		return []time.Time{}
	}
	closeMinutes, err := close.Minutes()
	if err != nil {
		return []time.Time{}
	}

	candidates := make([]time.Time, 0)
	for m := openMinutes; m+domain.ReservationDurationMinutes <= closeMinutes; m += domain.SlotStepMinutes {
		candidate := time.Date(
			date.Year(), date.Month(), date.Day(),
			m/60, m%60, 0, 0,
			date.Location(),
		)
		candidates = append(candidates, candidate)
	}
	return candidates
}

// parseOpeningHours разбирает строку "HH:mm-HH:mm"; некорректное значение
// заменяется на окно по умолчанию
func parseOpeningHours(hours *string) (open, close types.TimeString) {
	defaultParts := strings.SplitN(domain.DefaultOpeningHours, "-", 2)
	open, close = types.TimeString(defaultParts[0]), types.TimeString(defaultParts[1])

	if hours == nil {
		return open, close
	}

	parts := strings.SplitN(strings.TrimSpace(*hours), "-", 2)
	if len(parts) != 2 {
		return open, close
	}

	parsedOpen, err := types.NewTimeStringFromString(strings.TrimSpace(parts[0]))
	if err != nil {
		return open, close
	}
	parsedClose, err := types.NewTimeStringFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		return open, close
	}
	return parsedOpen, parsedClose
}

// overlapWindow возвращает блокируемое окно вокруг кандидата:
// [t - buffer, t + duration + buffer]
func overlapWindow(candidate time.Time) (start, end time.Time) {
	start = candidate.Add(-domain.BufferMinutes * time.Minute)
	end = candidate.Add((domain.ReservationDurationMinutes + domain.BufferMinutes) * time.Minute)
	return start, end
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
