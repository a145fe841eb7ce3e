package models

import (
	"github.com/frizerio/salon-booking-service/internal/domain"
)

// WindowResponse ответ с данными окна
type WindowResponse struct {
	ID        int64  `json:"id"`
	SalonID   int64  `json:"salonId"`
	WorkerID  int64  `json:"workerId"`
	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "10:30"
	Occupied  bool   `json:"occupied"`
}

// WindowListResponse ответ со списком окон
type WindowListResponse struct {
	Windows []WindowResponse `json:"windows"`
}

// FromDomain конвертирует domain модель в DTO
func FromDomain(w *domain.Window) *WindowResponse {
	if w == nil {
		return nil
	}

	return &WindowResponse{
		ID:        w.ID,
		SalonID:   w.SalonID,
		WorkerID:  w.WorkerID,
		Date:      w.Date.Format(domain.DateFormat),
		StartTime: w.StartTime.String(),
		EndTime:   w.EndTime.String(),
		Occupied:  w.Occupied,
	}
}

// FromDomainList конвертирует список domain моделей в DTO
func FromDomainList(wins []*domain.Window) *WindowListResponse {
	resp := &WindowListResponse{
		Windows: make([]WindowResponse, 0, len(wins)),
	}

	for _, w := range wins {
		if item := FromDomain(w); item != nil {
			resp.Windows = append(resp.Windows, *item)
		}
	}

	return resp
}
