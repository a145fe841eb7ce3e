package get_availability

import (
	"context"
	"time"

	"github.com/frizerio/salon-booking-service/internal/domain"
)

// SalonRepository интерфейс репозитория салонов
type SalonRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Salon, error)
}

// WorkerRepository интерфейс репозитория работников
type WorkerRepository interface {
	CountActiveBySalon(ctx context.Context, salonID int64) (int, error)
}

// WindowRepository интерфейс репозитория окон
type WindowRepository interface {
	// CountOccupiedByInterval получает количество занятых окон салона на дату,
	// сгруппированное по интервалу
	CountOccupiedByInterval(ctx context.Context, salonID int64, date time.Time) (map[domain.Interval]int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
