package get_availability

import (
	"time"

	"github.com/frizerio/salon-booking-service/internal/access"
	"github.com/frizerio/salon-booking-service/internal/domain"
)

// Request модель запроса на получение доступности окон
type Request struct {
	Actor    access.Actor // Кто спрашивает (определяет видимость неактивных салонов)
	SalonID  int64        // ID салона
	Date     time.Time    // Дата, на которую строится сетка (без времени)
	OnlyFree bool         // Вернуть только окна со свободными местами
}

// Response модель ответа с доступностью окон
type Response struct {
	SalonID int64
	Date    time.Time
	Windows []domain.WindowAvailability
}
