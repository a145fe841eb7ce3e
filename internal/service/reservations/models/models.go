package models

import (
	"errors"
	"time"

	"github.com/frizerio/salon-booking-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// ReservationResponse ответ с данными резервации
type ReservationResponse struct {
	ID         int64  `json:"id"`
	CustomerID int64  `json:"customerId"`
	WindowID   int64  `json:"windowId"`
	SalonID    int64  `json:"salonId"`
	SalonName  string `json:"salonName"`
	WorkerID   int64  `json:"workerId"`
	WorkerName string `json:"workerName"`
	Date       string `json:"date"`      // "2025-10-15"
	StartTime  string `json:"startTime"` // "10:00"
	EndTime    string `json:"endTime"`   // "10:30"
	Status     string `json:"status"`
	Note       string `json:"note,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// ReservationListResponse ответ со списком резерваций
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// FromDomainDetails конвертирует domain модель в DTO
func FromDomainDetails(d *domain.ReservationDetails) *ReservationResponse {
	if d == nil {
		return nil
	}

	return &ReservationResponse{
		ID:         d.ID,
		CustomerID: d.CustomerID,
		WindowID:   d.WindowID,
		SalonID:    d.SalonID,
		SalonName:  d.SalonName,
		WorkerID:   d.WorkerID,
		WorkerName: d.WorkerName,
		Date:       d.Date.Format(domain.DateFormat),
		StartTime:  d.StartTime.String(),
		EndTime:    d.EndTime.String(),
		Status:     string(d.Status),
		Note:       d.Note,
		CreatedAt:  d.CreatedAt,
	}
}

// FromDomainDetailsList конвертирует список domain моделей в DTO
func FromDomainDetailsList(details []*domain.ReservationDetails) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(details)),
	}

	for _, d := range details {
		if item := FromDomainDetails(d); item != nil {
			resp.Reservations = append(resp.Reservations, *item)
		}
	}

	return resp
}

// ToDomainStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)

	for _, valid := range domain.ValidStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
