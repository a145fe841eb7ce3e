package create_reservation

import "errors"

var (
	// ErrMissingData возвращается, когда не указаны ни окно, ни полный
	// набор (салон, дата, интервал)
	ErrMissingData = errors.New("create_reservation: missing reservation data")

	// ErrInvalidInterval возвращается при некорректном интервале
	// (начало не раньше конца)
	ErrInvalidInterval = errors.New("create_reservation: interval start must be before end")

	// ErrOutOfHours возвращается, когда интервал выходит за рабочее время салона
	ErrOutOfHours = errors.New("create_reservation: interval is outside salon working hours")

	// ErrWrongDuration возвращается, когда длительность интервала не равна
	// настроенной длительности слота салона
	ErrWrongDuration = errors.New("create_reservation: interval does not match salon slot duration")

	// ErrNoActiveWorkers возвращается, когда в салоне нет активных работников
	ErrNoActiveWorkers = errors.New("create_reservation: salon has no active workers")

	// ErrSlotFull возвращается, когда окно уже занято или все работники
	// на этот интервал разобраны
	ErrSlotFull = errors.New("create_reservation: slot is no longer available")

	// ErrDuplicateBooking возвращается, когда клиент уже держит подтверждённую
	// резервацию в этом салоне на это время
	ErrDuplicateBooking = errors.New("create_reservation: customer already has a reservation at this time")

	// ErrSalonNotFound возвращается, когда салон не найден или не виден актору
	ErrSalonNotFound = errors.New("create_reservation: salon not found")

	// ErrWindowNotFound возвращается, когда окно не найдено
	ErrWindowNotFound = errors.New("create_reservation: window not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
