package domain

// Default schedule values
const (
	DefaultWorkStart       = "09:00"
	DefaultWorkEnd         = "18:00"
	DefaultIntervalMinutes = 30
	DefaultWindowDays      = 30
)

// Business validation constants
const (
	MinIntervalMinutes        = 5
	MaxIntervalMinutes        = 480 // 8 hours
	MaxServiceDurationMinutes = 720 // 12 hours
	MaxWindowDays             = 90
	MaxNotesLength            = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses статусы записей, которые не занимают время сотрудника
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
	StatusNoShow,
}

// ActiveStatuses статусы записей, которые занимают время сотрудника
var ActiveStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusCompleted,
}
