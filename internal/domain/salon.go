package domain

import "github.com/frizerio/salon-booking-service/pkg/types"

// Salon represents a business location offering bookable time slots
type Salon struct {
	ID                  int64
	OwnerID             *int64 // administrator account owning the salon, nil for unclaimed salons
	Name                string
	Address             string
	Description         string
	Active              bool
	WorkFrom            types.TimeString
	WorkTo              types.TimeString
	SlotDurationMinutes int
}

// IsOwnedBy returns true if the salon is owned by the given user
func (s *Salon) IsOwnedBy(userID int64) bool {
	return s.OwnerID != nil && *s.OwnerID == userID
}

// ContainsInterval returns true if the interval falls within working hours
func (s *Salon) ContainsInterval(iv Interval) bool {
	return !iv.Start.IsBefore(s.WorkFrom) && !iv.End.IsAfter(s.WorkTo)
}
