package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание не найдено
	ErrScheduleNotFound = errors.New("schedule not found")

	// ErrInvalidHours возвращается при некорректных часах работы
	ErrInvalidHours = errors.New("invalid working hours")

	// ErrDateHasReservations возвращается при попытке изменить расписание даты,
	// на которую есть активные резервирования
	ErrDateHasReservations = errors.New("date has active reservations")

	// ErrWeekdayHasReservations возвращается при попытке изменить недельное
	// расписание дня недели с активными будущими резервированиями
	ErrWeekdayHasReservations = errors.New("weekday has active future reservations")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
