package validate_booking_update

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("validate_booking_update: booking not found")

	// ErrNotOwner возвращается, когда бронирование принадлежит другому клиенту
	ErrNotOwner = errors.New("validate_booking_update: booking belongs to another customer")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("validate_booking_update: internal error")
)
