package create_window

import (
	"context"

	"github.com/frizerio/salon-booking-service/internal/domain"
)

// SalonRepository интерфейс репозитория салонов
type SalonRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Salon, error)
}

// WorkerRepository интерфейс репозитория работников
type WorkerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Worker, error)
}

// WindowRepository интерфейс репозитория окон
type WindowRepository interface {
	Create(ctx context.Context, w *domain.Window) (*domain.Window, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
