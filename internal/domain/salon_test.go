package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frizerio/salon-booking-service/pkg/ptr"
)

func TestSalon_IsOwnedBy(t *testing.T) {
	owned := &Salon{ID: 1, OwnerID: ptr.Ptr(int64(42))}
	unclaimed := &Salon{ID: 2}

	assert.True(t, owned.IsOwnedBy(42))
	assert.False(t, owned.IsOwnedBy(43))
	assert.False(t, unclaimed.IsOwnedBy(42))
}

func TestSalon_ContainsInterval(t *testing.T) {
	salon := &Salon{WorkFrom: "09:00", WorkTo: "18:00"}

	tests := []struct {
		name string
		iv   Interval
		want bool
	}{
		{name: "inside working hours", iv: Interval{Start: "10:00", End: "10:30"}, want: true},
		{name: "exactly working hours", iv: Interval{Start: "09:00", End: "18:00"}, want: true},
		{name: "starts at opening", iv: Interval{Start: "09:00", End: "09:30"}, want: true},
		{name: "ends at closing", iv: Interval{Start: "17:30", End: "18:00"}, want: true},
		{name: "starts before opening", iv: Interval{Start: "08:30", End: "09:30"}, want: false},
		{name: "ends after closing", iv: Interval{Start: "17:45", End: "18:15"}, want: false},
		{name: "fully outside", iv: Interval{Start: "20:00", End: "20:30"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, salon.ContainsInterval(tt.iv))
		})
	}
}
