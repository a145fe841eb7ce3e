package get_reservations

import (
	"context"

	"github.com/frizerio/salon-booking-service/internal/access"
	"github.com/frizerio/salon-booking-service/internal/service/reservations/models"
)

type ReservationService interface {
	List(ctx context.Context, actor access.Actor) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
