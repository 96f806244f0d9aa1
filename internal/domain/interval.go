package domain

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// ErrInvalidInterval is returned for a booking interval with a non-positive duration or bad start
var ErrInvalidInterval = errors.New("invalid booking interval")

// BookingInterval is a half-open [StartOffset, EndOffset) range in minutes since local midnight
type BookingInterval struct {
	StartOffset int
	EndOffset   int
}

// NewBookingInterval builds the interval occupied by a booking starting at start
func NewBookingInterval(start types.TimeString, durationMinutes int) (BookingInterval, error) {
	if err := start.Validate(); err != nil {
		return BookingInterval{}, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}
	if durationMinutes <= 0 {
		return BookingInterval{}, fmt.Errorf("%w: duration must be positive, got %d", ErrInvalidInterval, durationMinutes)
	}

	offset := start.ToMinutes()
	return BookingInterval{StartOffset: offset, EndOffset: offset + durationMinutes}, nil
}

// Intersects is the half-open overlap test against [start, end)
func (b BookingInterval) Intersects(start, end int) bool {
	return start < b.EndOffset && end > b.StartOffset
}

// Overlaps reports whether [candidateStart, candidateStart+candidateDuration) conflicts
// with any existing interval. A conflict is one of:
//   - the candidate starts inside [a, b)
//   - the candidate ends inside (a, b]
//   - the candidate contains [a, b]
//
// For a positive duration this is the same as Intersects. Touching boundaries are not a conflict.
func Overlaps(candidateStart, candidateDuration int, existing []BookingInterval) bool {
	candidateEnd := candidateStart + candidateDuration

	for _, iv := range existing {
		startsInside := candidateStart >= iv.StartOffset && candidateStart < iv.EndOffset
		endsInside := candidateEnd > iv.StartOffset && candidateEnd <= iv.EndOffset
		contains := candidateStart <= iv.StartOffset && candidateEnd >= iv.EndOffset

		if startsInside || endsInside || contains {
			return true
		}
	}

	return false
}

// StartsAt reports whether any existing interval starts exactly at offset
func StartsAt(offset int, existing []BookingInterval) bool {
	for _, iv := range existing {
		if iv.StartOffset == offset {
			return true
		}
	}
	return false
}
