package cancel_reservation

import (
	"context"

	"github.com/frizerio/salon-booking-service/internal/access"
)

type ReservationService interface {
	Cancel(ctx context.Context, id int64, actor access.Actor) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
