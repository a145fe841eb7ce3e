package reservations

import (
	"context"

	"github.com/frizerio/salon-booking-service/internal/domain"
)

// ReservationRepository интерфейс репозитория резерваций
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	Delete(ctx context.Context, id int64) error
	ListDetailsByCustomer(ctx context.Context, customerID int64) ([]*domain.ReservationDetails, error)
	ListDetailsBySalonOwner(ctx context.Context, ownerID int64) ([]*domain.ReservationDetails, error)
}

// WindowRepository интерфейс репозитория окон
type WindowRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Window, error)
	SetOccupied(ctx context.Context, id int64, occupied bool) error
}

// SalonRepository интерфейс репозитория салонов
type SalonRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Salon, error)
}

// WorkerRepository интерфейс репозитория работников
type WorkerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Worker, error)
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
