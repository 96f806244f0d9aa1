package get_day_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	ListByFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
}

// WorkingHoursProvider возвращает действующие рабочие часы сотрудника
type WorkingHoursProvider interface {
	Resolve(ctx context.Context, staffID int64) (domain.WorkingHours, error)
}

// Metrics счетчики запросов доступности
type Metrics interface {
	IncAvailabilityQuery(kind string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Settings настройки расчета слотов из секции [schedule]
type Settings struct {
	Policy                        domain.ConflictPolicy
	DefaultServiceDurationMinutes int
	FitServiceBeforeClose         bool
	StoreTimeout                  time.Duration
}
