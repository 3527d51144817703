package join_waitlist

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("join_waitlist: customer not found")

	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = errors.New("join_waitlist: restaurant not found")

	// ErrInvalidInput возвращается при отсутствии обязательных полей
	ErrInvalidInput = errors.New("join_waitlist: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("join_waitlist: internal error")
)
