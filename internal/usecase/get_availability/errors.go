package get_availability

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден или не виден актору
	ErrSalonNotFound = errors.New("get_availability: salon not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
