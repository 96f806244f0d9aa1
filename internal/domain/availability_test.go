package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

func TestMarkAvailability_OneBookingAtOpening(t *testing.T) {
	candidates := DefaultWorkingHours().GenerateSlots()
	booked := []BookingInterval{{StartOffset: 540, EndOffset: 570}}

	for _, policy := range []ConflictPolicy{PolicyOverlap, PolicyExact} {
		t.Run(string(policy), func(t *testing.T) {
			slots := MarkAvailability(candidates, 30, booked, policy)

			require.Len(t, slots, 18)
			assert.Equal(t, Slot{StartTime: "09:00", Available: false}, slots[0])
			assert.Equal(t, 17, CountAvailable(slots))
			assert.True(t, AnyAvailable(slots))
		})
	}
}

func TestMarkAvailability_LongBookingPolicies(t *testing.T) {
	candidates := []types.TimeString{"10:00", "10:30", "11:00", "11:30"}
	// 10:00-11:30
	booked := []BookingInterval{{StartOffset: 600, EndOffset: 690}}

	overlap := MarkAvailability(candidates, 30, booked, PolicyOverlap)
	assert.Equal(t, []Slot{
		{StartTime: "10:00", Available: false},
		{StartTime: "10:30", Available: false},
		{StartTime: "11:00", Available: false},
		{StartTime: "11:30", Available: true},
	}, overlap)

	exact := MarkAvailability(candidates, 30, booked, PolicyExact)
	assert.Equal(t, []Slot{
		{StartTime: "10:00", Available: false},
		{StartTime: "10:30", Available: true},
		{StartTime: "11:00", Available: true},
		{StartTime: "11:30", Available: true},
	}, exact)
}

func TestMarkAvailability_CandidateDurationReachesNextBooking(t *testing.T) {
	candidates := []types.TimeString{"10:00", "10:30"}
	booked := []BookingInterval{{StartOffset: 660, EndOffset: 690}} // 11:00-11:30

	slots := MarkAvailability(candidates, 60, booked, PolicyOverlap)

	assert.True(t, slots[0].Available)
	assert.False(t, slots[1].Available)
}

func TestMarkAvailability_FullyBooked(t *testing.T) {
	wh := WorkingHours{Start: "09:00", End: "10:00", IntervalMinutes: 30}
	booked := []BookingInterval{{StartOffset: 540, EndOffset: 600}}

	slots := MarkAvailability(wh.GenerateSlots(), 30, booked, PolicyOverlap)

	assert.False(t, AnyAvailable(slots))
	assert.Zero(t, CountAvailable(slots))
}

func TestBookedIntervals(t *testing.T) {
	appointments := []*Appointment{
		{StartTime: "09:00", Status: StatusScheduled, ServiceDurationMinutes: ptr.Ptr(60)},
		{StartTime: "11:00", Status: StatusConfirmed},
		{StartTime: "12:00", Status: StatusCancelled, ServiceDurationMinutes: ptr.Ptr(30)},
		{StartTime: "13:00", Status: StatusNoShow},
	}

	intervals, err := BookedIntervals(appointments, 45)

	require.NoError(t, err)
	assert.Equal(t, []BookingInterval{
		{StartOffset: 540, EndOffset: 600},
		{StartOffset: 660, EndOffset: 705},
	}, intervals)
}

func TestBookedIntervals_BadStartTime(t *testing.T) {
	_, err := BookedIntervals([]*Appointment{{StartTime: "25:00", Status: StatusScheduled}}, 30)

	assert.ErrorIs(t, err, ErrInvalidInterval)
}
