package domain

import "time"

// Staff is a staff member whose time can be booked
type Staff struct {
	ID        int64
	Name      string
	Email     string
	CreatedAt time.Time
}

// Service is a service offered by a staff member
type Service struct {
	ID              int64
	StaffID         int64
	Name            string
	Description     string
	Price           float64
	DurationMinutes *int
}

// HasDuration returns true if the service declares its own duration
func (s *Service) HasDuration() bool {
	return s.DurationMinutes != nil && *s.DurationMinutes > 0
}

// ServicesFilter narrows a service catalog listing
type ServicesFilter struct {
	StaffID *int64
}
