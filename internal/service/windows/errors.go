package windows

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден или скрыт от актора
	ErrSalonNotFound = errors.New("windows.service: salon not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("windows.service: internal error")
)
