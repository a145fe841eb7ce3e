package delete_reservation

import (
	"context"

	"github.com/frizerio/salon-booking-service/internal/access"
)

type ReservationService interface {
	Delete(ctx context.Context, id int64, actor access.Actor) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
