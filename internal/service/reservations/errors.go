package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда резервация не найдена
	// либо не видна актору (не раскрываем чужие резервации клиентам)
	ErrReservationNotFound = errors.New("reservations.service: reservation not found")

	// ErrAccessDenied возвращается администратору при попытке действия
	// над резервацией чужого салона
	ErrAccessDenied = errors.New("reservations.service: access denied")

	// ErrInvalidStatus возвращается при недопустимом статусе резервации
	ErrInvalidStatus = errors.New("reservations.service: invalid reservation status")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations.service: internal error")
)
