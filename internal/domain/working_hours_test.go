package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

func TestWorkingHours_Validate(t *testing.T) {
	tests := []struct {
		name    string
		wh      WorkingHours
		wantErr bool
	}{
		{"default", DefaultWorkingHours(), false},
		{"start equals end", WorkingHours{Start: "10:00", End: "10:00", IntervalMinutes: 30}, true},
		{"start after end", WorkingHours{Start: "18:00", End: "09:00", IntervalMinutes: 30}, true},
		{"zero interval", WorkingHours{Start: "09:00", End: "18:00", IntervalMinutes: 0}, true},
		{"bad start", WorkingHours{Start: "9:00", End: "18:00", IntervalMinutes: 30}, true},
		{"bad end", WorkingHours{Start: "09:00", End: "24:00", IntervalMinutes: 30}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.wh.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidWorkingHours)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGenerateSlots_DefaultDay(t *testing.T) {
	slots := DefaultWorkingHours().GenerateSlots()

	require.Len(t, slots, 18)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("09:30"), slots[1])
	assert.Equal(t, types.TimeString("17:30"), slots[17])
	assert.NotContains(t, slots, types.TimeString("18:00"))
}

func TestGenerateSlots_PartialLastStep(t *testing.T) {
	wh := WorkingHours{Start: "09:00", End: "10:00", IntervalMinutes: 45}

	slots := wh.GenerateSlots()

	assert.Equal(t, []types.TimeString{"09:00", "09:45"}, slots)
	assert.Equal(t, 2, wh.SlotCount())
}

func TestGenerateSlots_CountMatchesCeil(t *testing.T) {
	for _, interval := range []int{5, 7, 15, 20, 30, 45, 60, 90, 120, 600} {
		wh := DefaultWorkingHours().WithInterval(interval)
		span := 9 * 60
		want := (span + interval - 1) / interval

		assert.Len(t, wh.GenerateSlots(), want, "interval=%d", interval)
		assert.Equal(t, want, wh.SlotCount(), "interval=%d", interval)
	}
}

func TestGenerateSlots_InvalidReturnsEmpty(t *testing.T) {
	wh := WorkingHours{Start: "18:00", End: "09:00", IntervalMinutes: 30}

	slots := wh.GenerateSlots()

	assert.NotNil(t, slots)
	assert.Empty(t, slots)
	assert.Zero(t, wh.SlotCount())
}

func TestGenerateSlots_FreshSlicePerCall(t *testing.T) {
	wh := DefaultWorkingHours()

	first := wh.GenerateSlots()
	first[0] = "00:00"

	assert.Equal(t, types.TimeString("09:00"), wh.GenerateSlots()[0])
}

func TestGenerateSlotsFor_LastBookableStart(t *testing.T) {
	wh := DefaultWorkingHours()

	slots := wh.GenerateSlotsFor(60)

	require.NotEmpty(t, slots)
	assert.Equal(t, types.TimeString("17:00"), slots[len(slots)-1])
	assert.Len(t, slots, 17)
}

func TestGenerateSlotsFor_NonPositiveDurationFallsBack(t *testing.T) {
	wh := DefaultWorkingHours()

	assert.Equal(t, wh.GenerateSlots(), wh.GenerateSlotsFor(0))
}

func TestGenerateSlotsFor_DurationLongerThanDay(t *testing.T) {
	wh := WorkingHours{Start: "09:00", End: "10:00", IntervalMinutes: 15}

	assert.Empty(t, wh.GenerateSlotsFor(90))
}

func TestWithInterval(t *testing.T) {
	wh := DefaultWorkingHours()

	assert.Equal(t, 15, wh.WithInterval(15).IntervalMinutes)
	assert.Equal(t, DefaultIntervalMinutes, wh.WithInterval(0).IntervalMinutes)
	assert.Equal(t, DefaultIntervalMinutes, wh.IntervalMinutes)
}
