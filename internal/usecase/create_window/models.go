package create_window

import (
	"time"

	"github.com/frizerio/salon-booking-service/internal/access"
	"github.com/frizerio/salon-booking-service/pkg/types"
)

// Request модель запроса на прямое создание окна администратором
type Request struct {
	Actor     access.Actor
	SalonID   int64
	WorkerID  int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Response модель ответа с созданным окном
type Response struct {
	ID        int64
	SalonID   int64
	WorkerID  int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Occupied  bool
}
