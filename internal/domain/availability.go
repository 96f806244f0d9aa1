package domain

import "github.com/m04kA/SMC-ScheduleService/pkg/types"

// MarkAvailability marks every candidate start against the booked intervals, preserving order.
// Under PolicyOverlap a candidate occupies [start, start+candidateDuration);
// under PolicyExact only an appointment starting at the same minute blocks it.
func MarkAvailability(
	candidates []types.TimeString,
	candidateDuration int,
	booked []BookingInterval,
	policy ConflictPolicy,
) []Slot {
	slots := make([]Slot, len(candidates))

	for i, candidate := range candidates {
		offset := candidate.ToMinutes()

		var taken bool
		if policy == PolicyExact {
			taken = StartsAt(offset, booked)
		} else {
			taken = Overlaps(offset, candidateDuration, booked)
		}

		slots[i] = Slot{StartTime: candidate, Available: !taken}
	}

	return slots
}

// BookedIntervals converts active appointments to intervals.
// Appointments without a service duration occupy defaultDuration minutes.
func BookedIntervals(appointments []*Appointment, defaultDuration int) ([]BookingInterval, error) {
	intervals := make([]BookingInterval, 0, len(appointments))

	for _, a := range appointments {
		if !a.IsActive() {
			continue
		}
		iv, err := a.Interval(defaultDuration)
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, iv)
	}

	return intervals, nil
}
