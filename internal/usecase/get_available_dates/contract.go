package get_available_dates

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/usecase/get_day_slots"
)

// DaySlotsCalculator рассчитывает слоты одного дня
type DaySlotsCalculator interface {
	Compute(ctx context.Context, req *get_day_slots.Request) (*get_day_slots.Response, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчики запросов доступности
type Metrics interface {
	IncAvailabilityQuery(kind string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
