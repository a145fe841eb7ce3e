package create_reservation

import (
	"fmt"
	"unicode/utf8"

	"github.com/frizerio/salon-booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Все отказы здесь происходят до любого обращения к хранилищу.
func validateRequest(req *Request) error {
	if req.Actor.UserID <= 0 {
		return fmt.Errorf("%w: customer is required", ErrInvalidInput)
	}

	// Лимит считается в символах, а не в байтах
	if utf8.RuneCountInString(req.Note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note is longer than %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	if req.WindowID != nil {
		if *req.WindowID <= 0 {
			return fmt.Errorf("%w: windowID must be positive", ErrInvalidInput)
		}
		return nil
	}

	// Виртуальный слот: нужен полный набор полей
	if req.SalonID == nil || req.Date == nil || req.StartTime == nil || req.EndTime == nil {
		return ErrMissingData
	}

	if *req.SalonID <= 0 {
		return fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}

	if !req.StartTime.IsBefore(*req.EndTime) {
		return ErrInvalidInterval
	}

	return nil
}
