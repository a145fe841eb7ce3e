package window

import "errors"

var (
	// ErrWindowNotFound возвращается, когда окно не найдено
	ErrWindowNotFound = errors.New("window.repository: window not found")

	// ErrDuplicateWindow возвращается при нарушении уникальности
	// (работник, дата, интервал)
	ErrDuplicateWindow = errors.New("window.repository: window already exists for worker and interval")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("window.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("window.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("window.repository: failed to scan row")
)
