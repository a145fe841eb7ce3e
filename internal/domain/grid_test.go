package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/frizerio/salon-booking-service/pkg/types"
)

func collect(seq func(yield func(Interval) bool)) []Interval {
	var out []Interval
	seq(func(iv Interval) bool {
		out = append(out, iv)
		return true
	})
	return out
}

func TestSlotGrid(t *testing.T) {
	tests := []struct {
		name     string
		from     types.TimeString
		to       types.TimeString
		duration int
		want     []Interval
	}{
		{
			name:     "even grid",
			from:     "08:00",
			to:       "10:00",
			duration: 30,
			want: []Interval{
				{Start: "08:00", End: "08:30"},
				{Start: "08:30", End: "09:00"},
				{Start: "09:00", End: "09:30"},
				{Start: "09:30", End: "10:00"},
			},
		},
		{
			name:     "partial trailing window dropped",
			from:     "08:00",
			to:       "09:40",
			duration: 45,
			want: []Interval{
				{Start: "08:00", End: "08:45"},
				{Start: "08:45", End: "09:30"},
			},
		},
		{
			name:     "window does not fit at all",
			from:     "08:00",
			to:       "08:20",
			duration: 30,
			want:     nil,
		},
		{
			name:     "single exact window",
			from:     "08:00",
			to:       "09:00",
			duration: 60,
			want: []Interval{
				{Start: "08:00", End: "09:00"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(SlotGrid(tt.from, tt.to, tt.duration))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlotGrid_Restartable(t *testing.T) {
	grid := SlotGrid("08:00", "10:00", 30)

	first := collect(grid)
	second := collect(grid)

	assert.Equal(t, first, second)
	assert.Len(t, first, 4)
}

func TestSlotGrid_EarlyStop(t *testing.T) {
	grid := SlotGrid("08:00", "20:00", 30)

	var count int
	grid(func(iv Interval) bool {
		count++
		return count < 3
	})

	assert.Equal(t, 3, count)
}

func TestAvailabilityID(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	iv := Interval{Start: "10:00", End: "10:30"}

	assert.Equal(t, "2025-10-15-10:00-10:30", AvailabilityID(date, iv))
}
