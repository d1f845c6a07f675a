package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда резервирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrNotPending возвращается при попытке подтвердить резервирование не в статусе pending
	ErrNotPending = errors.New("reservation is not pending")

	// ErrCannotCancel возвращается, когда резервирование нельзя отменить
	ErrCannotCancel = errors.New("reservation cannot be cancelled")

	// ErrCannotComplete возвращается, когда резервирование нельзя завершить
	ErrCannotComplete = errors.New("reservation cannot be completed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
