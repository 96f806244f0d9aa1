package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// ErrInvalidWorkingHours is returned when working hours violate start < end or a positive interval
var ErrInvalidWorkingHours = errors.New("invalid working hours")

// WorkingHours is a single-day bookable window stepped by a fixed interval
type WorkingHours struct {
	Start           types.TimeString
	End             types.TimeString
	IntervalMinutes int
}

// DefaultWorkingHours returns the process-wide default 09:00-18:00 with 30 minute slots
func DefaultWorkingHours() WorkingHours {
	return WorkingHours{
		Start:           DefaultWorkStart,
		End:             DefaultWorkEnd,
		IntervalMinutes: DefaultIntervalMinutes,
	}
}

// Validate checks the invariants of working hours
func (w WorkingHours) Validate() error {
	if err := w.Start.Validate(); err != nil {
		return fmt.Errorf("%w: start: %v", ErrInvalidWorkingHours, err)
	}
	if err := w.End.Validate(); err != nil {
		return fmt.Errorf("%w: end: %v", ErrInvalidWorkingHours, err)
	}
	if !w.Start.IsBefore(w.End) {
		return fmt.Errorf("%w: start %s must be before end %s", ErrInvalidWorkingHours, w.Start, w.End)
	}
	if w.IntervalMinutes <= 0 {
		return fmt.Errorf("%w: interval must be positive", ErrInvalidWorkingHours)
	}
	return nil
}

// WithInterval returns a copy with a different interval; non-positive values keep the current one
func (w WorkingHours) WithInterval(intervalMinutes int) WorkingHours {
	if intervalMinutes > 0 {
		w.IntervalMinutes = intervalMinutes
	}
	return w
}

// GenerateSlots returns candidate start times from Start stepping by the interval,
// stopping strictly before End. A slot starting exactly at End is never produced.
// A service started at the last slot may run past End.
func (w WorkingHours) GenerateSlots() []types.TimeString {
	return w.generateUntil(w.End.ToMinutes())
}

// GenerateSlotsFor returns only the starts that leave room for durationMinutes before End,
// i.e. the last start is End - durationMinutes.
func (w WorkingHours) GenerateSlotsFor(durationMinutes int) []types.TimeString {
	if durationMinutes <= 0 {
		return w.GenerateSlots()
	}
	// +1: старт ровно в End - duration допустим
	return w.generateUntil(w.End.ToMinutes() - durationMinutes + 1)
}

// SlotCount returns ceil((end-start)/interval), the length of GenerateSlots
func (w WorkingHours) SlotCount() int {
	if w.Validate() != nil {
		return 0
	}
	span := w.End.ToMinutes() - w.Start.ToMinutes()
	return (span + w.IntervalMinutes - 1) / w.IntervalMinutes
}

func (w WorkingHours) generateUntil(limit int) []types.TimeString {
	slots := make([]types.TimeString, 0)
	if w.Validate() != nil {
		return slots
	}

	for cursor := w.Start.ToMinutes(); cursor < limit; cursor += w.IntervalMinutes {
		slot, err := types.NewTimeStringFromMinutes(cursor)
		if err != nil {
			break
		}
		slots = append(slots, slot)
	}

	return slots
}

// StaffWorkingHours is a per-staff override of the default working hours
type StaffWorkingHours struct {
	ID      int64
	StaffID int64
	WorkingHours
	CreatedAt time.Time
	UpdatedAt time.Time
}
