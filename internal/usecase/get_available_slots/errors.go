package get_available_slots

import "errors"

var (
	// ErrTableNotFound возвращается, когда стол не найден
	ErrTableNotFound = errors.New("get_available_slots: table not found")

	// ErrRestaurantNotFound возвращается, когда ресторан стола не найден
	ErrRestaurantNotFound = errors.New("get_available_slots: restaurant not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
