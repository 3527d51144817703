package validate_booking_update

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/tablerow/FRB-ReservationService/internal/infra/storage/booking"
	createBooking "github.com/tablerow/FRB-ReservationService/internal/usecase/create_booking"
)

// UseCase use case проверки конфликтов при обновлении бронирования.
// Повторяет полную проверку создания, но исключает само обновляемое
// бронирование из проверки пересечений.
type UseCase struct {
	bookingRepo BookingRepository
	validator   ConflictValidator
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, validator ConflictValidator, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		validator:   validator,
		logger:      logger,
	}
}

// Execute проверяет конфликты обновленного бронирования.
// Запрашивающий клиент должен быть владельцем бронирования.
func (uc *UseCase) Execute(ctx context.Context, bookingID int64, req *createBooking.Request, customerID int64) error {
	uc.logger.Info("ValidateBookingUpdate: booking=%d, customer=%d", bookingID, customerID)

	booking, err := uc.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("ValidateBookingUpdate: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if booking.CustomerID != customerID {
		uc.logger.Warn("ValidateBookingUpdate: customer=%d is not the owner of booking=%d", customerID, bookingID)
		return ErrNotOwner
	}

	if err := uc.validator.Validate(ctx, req, &bookingID); err != nil {
		uc.logger.Warn("ValidateBookingUpdate: validation failed for booking=%d: %v", bookingID, err)
		return err
	}

	return nil
}
