package create_reservation

import (
	"context"
	"time"

	"github.com/frizerio/salon-booking-service/internal/domain"
	"github.com/frizerio/salon-booking-service/pkg/types"
)

// SalonRepository интерфейс репозитория салонов
type SalonRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Salon, error)
}

// WorkerRepository интерфейс репозитория работников
type WorkerRepository interface {
	// ListActiveBySalon возвращает активных работников салона по возрастанию ID
	ListActiveBySalon(ctx context.Context, salonID int64) ([]*domain.Worker, error)
}

// WindowRepository интерфейс репозитория окон
type WindowRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Window, error)
	FindOrCreate(ctx context.Context, salonID, workerID int64, date time.Time, iv domain.Interval) (*domain.Window, error)
	OccupiedWorkerIDs(ctx context.Context, salonID int64, date time.Time, iv domain.Interval) ([]int64, error)
	SetOccupied(ctx context.Context, id int64, occupied bool) error
}

// ReservationRepository интерфейс репозитория резерваций
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetByWindowIDForUpdate(ctx context.Context, windowID int64) (*domain.Reservation, error)
	Rebook(ctx context.Context, id int64, customerID int64, note string) error
	ExistsConfirmedAt(ctx context.Context, customerID, salonID int64, date time.Time, start types.TimeString) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
