package confirm_waitlist

import "errors"

var (
	// ErrEntryNotFound возвращается, когда запись листа ожидания не найдена
	ErrEntryNotFound = errors.New("confirm_waitlist: waitlist entry not found")

	// ErrNotOwner возвращается при попытке подтвердить запись чужого ресторана
	ErrNotOwner = errors.New("confirm_waitlist: entry belongs to another restaurant")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_waitlist: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_waitlist: internal error")
)
