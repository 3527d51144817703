package join_waitlist

import (
	"fmt"

	"github.com/tablerow/FRB-ReservationService/internal/domain"
)

// validateRequest проверяет наличие обязательных полей
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID is required", ErrInvalidInput)
	}
	if req.RestaurantID <= 0 {
		return fmt.Errorf("%w: restaurantID is required", ErrInvalidInput)
	}
	if req.PartySize == 0 {
		return fmt.Errorf("%w: partySize is required", ErrInvalidInput)
	}
	return nil
}

// validatePartySize проверяет размер компании для листа ожидания.
// Ограничение в 6 человек строже общего диапазона [1, 20]
// и проверяется первым: группа из 8 получает сообщение про лимит
// очереди, а не про общий диапазон.
func validatePartySize(partySize int) error {
	if partySize > domain.WaitlistGroupLimit {
		return domain.NewConflict(domain.ConflictGuestCountInvalid,
			"groups larger than %d cannot join the waitlist", domain.WaitlistGroupLimit)
	}
	if partySize < domain.MinWaitlistPartySize || partySize > domain.MaxWaitlistPartySize {
		return domain.NewConflict(domain.ConflictGuestCountInvalid,
			"party size must be between %d and %d", domain.MinWaitlistPartySize, domain.MaxWaitlistPartySize)
	}
	return nil
}
