package create_reservation

import (
	"time"

	"github.com/frizerio/salon-booking-service/internal/access"
	"github.com/frizerio/salon-booking-service/pkg/types"
)

// Request модель запроса на создание резервации.
// Указывается либо WindowID существующего окна, либо полный набор
// SalonID + Date + StartTime + EndTime для виртуального слота из сетки.
// Если указано и то и другое, WindowID имеет приоритет.
type Request struct {
	Actor     access.Actor      // Клиент, создающий резервацию
	WindowID  *int64            // ID существующего окна (опционально)
	SalonID   *int64            // ID салона (для виртуального слота)
	Date      *time.Time        // Дата (для виртуального слота)
	StartTime *types.TimeString // Начало интервала (для виртуального слота)
	EndTime   *types.TimeString // Конец интервала (для виртуального слота)
	Note      string            // Заметка клиента (до 250 символов)
}

// Response модель ответа с созданной резервацией
type Response struct {
	ID         int64
	CustomerID int64
	WindowID   int64
	SalonID    int64
	SalonName  string
	WorkerID   int64
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	Status     string
	Note       string
	CreatedAt  time.Time
}
