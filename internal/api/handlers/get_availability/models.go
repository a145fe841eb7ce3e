package get_availability

import (
	"time"

	"github.com/frizerio/salon-booking-service/internal/access"
	"github.com/frizerio/salon-booking-service/internal/domain"
	getAvailability "github.com/frizerio/salon-booking-service/internal/usecase/get_availability"
)

// WindowAvailabilityResponse HTTP модель одного окна сетки
type WindowAvailabilityResponse struct {
	ID            string `json:"id"` // "2025-10-15-10:00-10:30"
	SalonID       int64  `json:"salonId"`
	SalonName     string `json:"salonName"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	Available     bool   `json:"available"`
	FreeCount     int    `json:"freeCount"`
	TotalCapacity int    `json:"totalCapacity"`
}

// AvailabilityResponse HTTP модель ответа с сеткой доступности
type AvailabilityResponse struct {
	SalonID int64                        `json:"salonId"`
	Date    string                       `json:"date"`
	Windows []WindowAvailabilityResponse `json:"windows"`
}

// ToUseCaseRequest конвертирует параметры HTTP запроса в модель use case
func ToUseCaseRequest(actor access.Actor, salonID int64, dateStr string, onlyFree bool) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		Actor:    actor,
		SalonID:  salonID,
		Date:     date,
		OnlyFree: onlyFree,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	windows := make([]WindowAvailabilityResponse, 0, len(resp.Windows))
	for _, w := range resp.Windows {
		windows = append(windows, WindowAvailabilityResponse{
			ID:            w.ID,
			SalonID:       w.SalonID,
			SalonName:     w.SalonName,
			Date:          w.Date.Format(domain.DateFormat),
			StartTime:     w.StartTime.String(),
			EndTime:       w.EndTime.String(),
			Available:     w.Available,
			FreeCount:     w.FreeCount,
			TotalCapacity: w.TotalCapacity,
		})
	}

	return &AvailabilityResponse{
		SalonID: resp.SalonID,
		Date:    resp.Date.Format(domain.DateFormat),
		Windows: windows,
	}
}
