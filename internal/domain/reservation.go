package domain

import (
	"time"

	"github.com/frizerio/salon-booking-service/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
)

// ValidStatuses lists every status a reservation can hold
var ValidStatuses = []ReservationStatus{
	StatusConfirmed,
	StatusCancelled,
}

// Reservation represents a customer's claim on a window.
// A window has at most one reservation record ever: cancelling flips the
// status, rebooking the same window reuses the record with a new customer.
type Reservation struct {
	ID         int64
	CustomerID int64
	WindowID   int64
	Status     ReservationStatus
	Note       string
	CreatedAt  time.Time
}

// IsConfirmed returns true if the reservation is currently confirmed
func (r *Reservation) IsConfirmed() bool {
	return r.Status == StatusConfirmed
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// ReservationDetails is a reservation joined with its window and salon,
// as listed to customers and administrators
type ReservationDetails struct {
	Reservation

	SalonID    int64
	SalonName  string
	WorkerID   int64
	WorkerName string
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
}
