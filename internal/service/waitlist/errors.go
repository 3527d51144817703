package waitlist

import "errors"

var (
	// ErrEntryNotFound возвращается, когда запись листа ожидания не найдена
	ErrEntryNotFound = errors.New("waitlist entry not found")

	// ErrNotOwner возвращается при попытке отменить чужую запись
	ErrNotOwner = errors.New("waitlist entry belongs to another customer")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("waitlist service: internal error")
)
