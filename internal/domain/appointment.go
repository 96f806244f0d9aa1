package domain

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// IsValid returns true for a known status
func (s AppointmentStatus) IsValid() bool {
	for _, known := range ActiveStatuses {
		if s == known {
			return true
		}
	}
	for _, known := range InactiveStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Appointment represents a customer's visit booked with a staff member
type Appointment struct {
	ID          int64
	StaffID     int64
	CustomerID  int64
	ServiceID   *int64
	ServiceName string
	// ServiceDurationMinutes comes from the linked service, nil when the service has no duration
	ServiceDurationMinutes *int
	Date                   time.Time
	StartTime              types.TimeString
	Status                 AppointmentStatus
	Notes                  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment occupies the staff member's time
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled && a.Status != StatusNoShow
}

// CanBeModified returns true if the appointment may still be rescheduled
func (a *Appointment) CanBeModified() bool {
	return a.Status == StatusScheduled || a.Status == StatusConfirmed
}

// DurationOr returns the service duration or def when the service has none
func (a *Appointment) DurationOr(def int) int {
	if a.ServiceDurationMinutes == nil || *a.ServiceDurationMinutes <= 0 {
		return def
	}
	return *a.ServiceDurationMinutes
}

// Interval returns the occupied [start, start+duration) interval
func (a *Appointment) Interval(defaultDuration int) (BookingInterval, error) {
	return NewBookingInterval(a.StartTime, a.DurationOr(defaultDuration))
}

// AppointmentsFilter фильтр для выборки записей сотрудника
type AppointmentsFilter struct {
	StaffID         int64      // Обязательный параметр
	Date            *time.Time // Конкретная дата (опционально)
	IncludeInactive bool       // Включать отмененные и no-show
}
