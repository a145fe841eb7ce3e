package get_salon_windows

import (
	"context"
	"time"

	"github.com/frizerio/salon-booking-service/internal/access"
	"github.com/frizerio/salon-booking-service/internal/service/windows/models"
)

type WindowService interface {
	ListBySalonDate(ctx context.Context, salonID int64, date time.Time, onlyFree bool, actor access.Actor) (*models.WindowListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
