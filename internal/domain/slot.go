package domain

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Slot is a candidate start time with its availability
type Slot struct {
	StartTime types.TimeString
	Available bool
}

// DateAvailability tells whether a calendar date has at least one free slot
type DateAvailability struct {
	Date      time.Time
	Available bool
}

// AnyAvailable returns true if at least one slot is available
func AnyAvailable(slots []Slot) bool {
	for _, s := range slots {
		if s.Available {
			return true
		}
	}
	return false
}

// CountAvailable returns the number of available slots
func CountAvailable(slots []Slot) int {
	count := 0
	for _, s := range slots {
		if s.Available {
			count++
		}
	}
	return count
}
