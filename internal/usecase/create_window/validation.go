package create_window

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	if req.WorkerID <= 0 {
		return fmt.Errorf("%w: workerID must be positive", ErrInvalidInput)
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

	if !req.StartTime.IsBefore(req.EndTime) {
		return ErrInvalidInterval
	}

	return nil
}
