package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

func TestNewBookingInterval(t *testing.T) {
	iv, err := NewBookingInterval("10:30", 45)
	require.NoError(t, err)
	assert.Equal(t, BookingInterval{StartOffset: 630, EndOffset: 675}, iv)

	_, err = NewBookingInterval("10:30", 0)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = NewBookingInterval("bad", 30)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestOverlaps_Boundaries(t *testing.T) {
	existing := []BookingInterval{{StartOffset: 600, EndOffset: 660}} // 10:00-11:00

	tests := []struct {
		name     string
		start    int
		duration int
		want     bool
	}{
		{"ends exactly at start", 570, 30, false},
		{"starts exactly at end", 660, 30, false},
		{"starts exactly at start", 600, 30, true},
		{"starts inside", 630, 60, true},
		{"ends inside", 570, 45, true},
		{"contains", 540, 180, true},
		{"same interval", 600, 60, true},
		{"well before", 480, 60, false},
		{"well after", 720, 60, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.start, tt.duration, existing))
		})
	}
}

func TestOverlaps_EmptyExisting(t *testing.T) {
	assert.False(t, Overlaps(600, 30, nil))
}

func TestOverlaps_AnyOfSeveral(t *testing.T) {
	existing := []BookingInterval{
		{StartOffset: 540, EndOffset: 570},
		{StartOffset: 720, EndOffset: 780},
	}

	assert.False(t, Overlaps(570, 150, existing))
	assert.True(t, Overlaps(570, 151, existing))
}

func TestOverlaps_MatchesHalfOpenIntersection(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 20000; i++ {
		a := rng.Intn(types.MinutesPerDay)
		b := a + 1 + rng.Intn(240)
		s := rng.Intn(types.MinutesPerDay)
		d := 1 + rng.Intn(240)

		iv := BookingInterval{StartOffset: a, EndOffset: b}
		want := iv.Intersects(s, s+d)

		require.Equal(t, want, Overlaps(s, d, []BookingInterval{iv}),
			"s=%d d=%d a=%d b=%d", s, d, a, b)
	}
}

func TestOverlaps_MatchesHalfOpenIntersection_Touching(t *testing.T) {
	for a := 0; a < 120; a++ {
		for length := 1; length <= 30; length++ {
			iv := BookingInterval{StartOffset: a, EndOffset: a + length}
			for d := 1; d <= 30; d++ {
				for _, s := range []int{a - d, a + length, a, a + length - 1, a - d + 1} {
					require.Equal(t, iv.Intersects(s, s+d), Overlaps(s, d, []BookingInterval{iv}),
						"s=%d d=%d a=%d b=%d", s, d, a, a+length)
				}
			}
		}
	}
}

func TestStartsAt(t *testing.T) {
	existing := []BookingInterval{{StartOffset: 600, EndOffset: 660}}

	assert.True(t, StartsAt(600, existing))
	assert.False(t, StartsAt(630, existing))
	assert.False(t, StartsAt(600, nil))
}
