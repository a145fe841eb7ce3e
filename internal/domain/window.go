package domain

import (
	"time"

	"github.com/frizerio/salon-booking-service/pkg/types"
)

// Window represents a concrete, dated, worker-assigned time interval.
// A window record is created either directly by an administrator or lazily
// when a customer books a generated slot. Once created it is never deleted
// on cancellation; only the occupied flag toggles.
type Window struct {
	ID        int64
	SalonID   int64
	WorkerID  int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Occupied  bool
}

// Interval returns the time interval of the window
func (w *Window) Interval() Interval {
	return Interval{Start: w.StartTime, End: w.EndTime}
}
