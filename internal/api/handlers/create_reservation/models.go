package create_reservation

import (
	"time"

	"github.com/frizerio/salon-booking-service/internal/access"
	"github.com/frizerio/salon-booking-service/internal/domain"
	createReservation "github.com/frizerio/salon-booking-service/internal/usecase/create_reservation"
	"github.com/frizerio/salon-booking-service/pkg/types"
)

// CreateReservationRequest HTTP request model.
// Либо windowId существующего окна, либо полный набор
// salonId + date + startTime + endTime для слота из сетки.
type CreateReservationRequest struct {
	WindowID  *int64  `json:"windowId,omitempty"`
	SalonID   *int64  `json:"salonId,omitempty"`
	Date      *string `json:"date,omitempty"`      // "2025-10-15"
	StartTime *string `json:"startTime,omitempty"` // "10:00"
	EndTime   *string `json:"endTime,omitempty"`   // "10:30"
	Note      string  `json:"note,omitempty" validate:"max=250"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customerId"`
	WindowID   int64     `json:"windowId"`
	SalonID    int64     `json:"salonId"`
	SalonName  string    `json:"salonName"`
	WorkerID   int64     `json:"workerId"`
	Date       string    `json:"date"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	Status     string    `json:"status"`
	Note       string    `json:"note,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(actor access.Actor) (*createReservation.Request, error) {
	req := &createReservation.Request{
		Actor:    actor,
		WindowID: r.WindowID,
		SalonID:  r.SalonID,
		Note:     r.Note,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if r.StartTime != nil {
		start, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = &start
	}

	if r.EndTime != nil {
		end, err := types.NewTimeStringFromString(*r.EndTime)
		if err != nil {
			return nil, err
		}
		req.EndTime = &end
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:         resp.ID,
		CustomerID: resp.CustomerID,
		WindowID:   resp.WindowID,
		SalonID:    resp.SalonID,
		SalonName:  resp.SalonName,
		WorkerID:   resp.WorkerID,
		Date:       resp.Date.Format(domain.DateFormat),
		StartTime:  resp.StartTime.String(),
		EndTime:    resp.EndTime.String(),
		Status:     resp.Status,
		Note:       resp.Note,
		CreatedAt:  resp.CreatedAt,
	}
}
