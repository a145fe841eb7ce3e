package windows

import (
	"context"
	"time"

	"github.com/frizerio/salon-booking-service/internal/domain"
)

// WindowRepository интерфейс репозитория окон
type WindowRepository interface {
	ListBySalonDate(ctx context.Context, salonID int64, date time.Time, onlyFree bool) ([]*domain.Window, error)
}

// SalonRepository интерфейс репозитория салонов
type SalonRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Salon, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
