package domain

import (
	"fmt"
	"time"

	"github.com/frizerio/salon-booking-service/pkg/types"
)

// WindowAvailability describes the capacity of one grid window on one day.
// The ID is synthetic (date-start-end) because the window may have no backing
// record yet.
type WindowAvailability struct {
	ID            string
	SalonID       int64
	SalonName     string
	Date          time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	Available     bool
	FreeCount     int
	TotalCapacity int
}

// AvailabilityID builds the synthetic identifier of a grid window
func AvailabilityID(date time.Time, iv Interval) string {
	return fmt.Sprintf("%s-%s-%s", date.Format(DateFormat), iv.Start, iv.End)
}
