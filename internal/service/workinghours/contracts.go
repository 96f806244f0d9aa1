package workinghours

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// WorkingHoursRepository интерфейс репозитория рабочих часов
type WorkingHoursRepository interface {
	GetByStaffID(ctx context.Context, staffID int64) (*domain.StaffWorkingHours, error)
	Upsert(ctx context.Context, wh *domain.StaffWorkingHours) (*domain.StaffWorkingHours, error)
	DeleteByStaffID(ctx context.Context, staffID int64) error
}

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
