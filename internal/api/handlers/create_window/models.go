package create_window

import (
	"time"

	"github.com/frizerio/salon-booking-service/internal/access"
	"github.com/frizerio/salon-booking-service/internal/domain"
	createWindow "github.com/frizerio/salon-booking-service/internal/usecase/create_window"
	"github.com/frizerio/salon-booking-service/pkg/types"
)

// CreateWindowRequest HTTP request model
type CreateWindowRequest struct {
	SalonID   int64  `json:"salonId" validate:"required,gt=0"`
	WorkerID  int64  `json:"workerId" validate:"required,gt=0"`
	Date      string `json:"date" validate:"required"`      // "2025-10-15"
	StartTime string `json:"startTime" validate:"required"` // "10:00"
	EndTime   string `json:"endTime" validate:"required"`   // "10:30"
}

// WindowResponse HTTP response model
type WindowResponse struct {
	ID        int64  `json:"id"`
	SalonID   int64  `json:"salonId"`
	WorkerID  int64  `json:"workerId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Occupied  bool   `json:"occupied"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateWindowRequest) ToUseCaseRequest(actor access.Actor) (*createWindow.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createWindow.Request{
		Actor:     actor,
		SalonID:   r.SalonID,
		WorkerID:  r.WorkerID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createWindow.Response) *WindowResponse {
	return &WindowResponse{
		ID:        resp.ID,
		SalonID:   resp.SalonID,
		WorkerID:  resp.WorkerID,
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime.String(),
		EndTime:   resp.EndTime.String(),
		Occupied:  resp.Occupied,
	}
}
