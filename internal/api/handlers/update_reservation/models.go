package update_reservation

// UpdateReservationRequest HTTP request model
type UpdateReservationRequest struct {
	Status string `json:"status" validate:"required"`
}
