package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation.usecase: invalid input")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("create_reservation.usecase: date is in the past")

	// ErrServiceNotFound возвращается, когда услуга не найдена в салоне
	ErrServiceNotFound = errors.New("create_reservation.usecase: service not found")

	// ErrSalonClosed возвращается, когда салон закрыт в запрошенную дату
	ErrSalonClosed = errors.New("create_reservation.usecase: salon is closed on this date")

	// ErrSlotTaken возвращается, когда запрошенное время недоступно
	ErrSlotTaken = errors.New("create_reservation.usecase: time slot is not available")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("create_reservation.usecase: internal error")
)
