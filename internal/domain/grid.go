package domain

import (
	"iter"

	"github.com/frizerio/salon-booking-service/pkg/types"
)

// Interval is a (start, end) time pair within a single day
type Interval struct {
	Start types.TimeString
	End   types.TimeString
}

// SlotGrid returns the ordered sequence of candidate windows between from and
// to, each exactly durationMinutes long. The sequence is lazy and restartable;
// iteration stops as soon as the next window's end would pass to, so a partial
// trailing window is dropped rather than truncated. Callers are expected to
// pre-validate from < to and the duration range.
func SlotGrid(from, to types.TimeString, durationMinutes int) iter.Seq[Interval] {
	return func(yield func(Interval) bool) {
		current := from
		for {
			end, err := current.AddMinutes(durationMinutes)
			if err != nil || end.IsAfter(to) {
				return
			}
			if !yield(Interval{Start: current, End: end}) {
				return
			}
			current = end
		}
	}
}
