package create_window

import "errors"

var (
	// ErrForbidden возвращается, когда актор не администратор
	ErrForbidden = errors.New("create_window: administrator access required")

	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("create_window: salon not found")

	// ErrForeignSalon возвращается при попытке создать окно в чужом салоне
	ErrForeignSalon = errors.New("create_window: salon is owned by another administrator")

	// ErrWorkerNotFound возвращается, когда работник не найден
	ErrWorkerNotFound = errors.New("create_window: worker not found")

	// ErrWorkerMismatch возвращается, когда работник не принадлежит салону
	ErrWorkerMismatch = errors.New("create_window: worker does not belong to this salon")

	// ErrInvalidInterval возвращается при некорректном интервале
	ErrInvalidInterval = errors.New("create_window: interval start must be before end")

	// ErrDuplicateWindow возвращается, когда у работника уже есть окно
	// с таким интервалом на эту дату
	ErrDuplicateWindow = errors.New("create_window: window already exists for worker and interval")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_window: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_window: internal error")
)
