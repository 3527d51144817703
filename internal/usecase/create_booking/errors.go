package create_booking

import "errors"

// Ошибки семейства "сущность не найдена" - немедленный отказ без частичных
// записей. Бизнес-конфликты возвращаются как *domain.ConflictError
// и различаются по тегу ConflictType.
var (
	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("create_booking: customer not found")

	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = errors.New("create_booking: restaurant not found")

	// ErrTableNotFound возвращается, когда один из столов не найден
	ErrTableNotFound = errors.New("create_booking: table not found")

	// ErrTableNotInRestaurant возвращается, когда стол принадлежит другому ресторану
	ErrTableNotInRestaurant = errors.New("create_booking: table does not belong to this restaurant")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
