package get_available_dates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/usecase/get_day_slots"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

const metricKind = "dates"

// UseCase use case для получения дат, на которые у сотрудника есть свободные слоты
type UseCase struct {
	daySlots          DaySlotsCalculator
	txManager         TransactionManager
	defaultWindowDays int
	maxWindowDays     int
	timeProvider      TimeProvider
	metrics           Metrics
	logger            Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	daySlots DaySlotsCalculator,
	txManager TransactionManager,
	defaultWindowDays int,
	maxWindowDays int,
	timeProvider TimeProvider,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		daySlots:          daySlots,
		txManager:         txManager,
		defaultWindowDays: defaultWindowDays,
		maxWindowDays:     maxWindowDays,
		timeProvider:      timeProvider,
		metrics:           metrics,
		logger:            logger,
	}
}

// Execute выполняет use case получения доступных дат.
// Для каждого дня окна [сегодня, сегодня+windowDays) рассчитываются слоты;
// день доступен, если свободен хотя бы один слот. Ошибка любого дня прерывает расчет.
// Все дни читаются в одной транзакции только для чтения, то есть из одного снимка данных.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	windowDays := ptr.Value(req.WindowDays, uc.defaultWindowDays)

	uc.logger.Info("GetAvailableDates: staff=%d, days=%d", req.StaffID, windowDays)

	if req.StaffID <= 0 {
		return nil, fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}
	if windowDays <= 0 || windowDays > uc.maxWindowDays {
		uc.logger.Warn("GetAvailableDates: window of %d days is out of range", windowDays)
		return nil, fmt.Errorf("%w: days must be between 1 and %d", ErrInvalidInput, uc.maxWindowDays)
	}

	today := startOfDay(uc.timeProvider.Now())
	dates := make([]domain.DateAvailability, 0, windowDays)

	var dayErr error
	err := uc.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		for i := 0; i < windowDays; i++ {
			date := today.AddDate(0, 0, i)

			day, err := uc.daySlots.Compute(ctx, &get_day_slots.Request{
				StaffID:                req.StaffID,
				Date:                   date,
				ServiceDurationMinutes: req.ServiceDurationMinutes,
			})
			if err != nil {
				dayErr = uc.mapDayError(date, err)
				return dayErr
			}

			dates = append(dates, domain.DateAvailability{
				Date:      date,
				Available: domain.AnyAvailable(day.Slots),
			})
		}
		return nil
	})
	if dayErr != nil {
		return nil, dayErr
	}
	if err != nil {
		uc.logger.Error("GetAvailableDates: transaction failed for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	uc.metrics.IncAvailabilityQuery(metricKind)

	return &Response{
		StaffID: req.StaffID,
		Dates:   dates,
	}, nil
}

func (uc *UseCase) mapDayError(date time.Time, err error) error {
	switch {
	case errors.Is(err, get_day_slots.ErrStaffNotFound):
		return ErrStaffNotFound
	case errors.Is(err, get_day_slots.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, get_day_slots.ErrStoreUnavailable):
		uc.logger.Error("GetAvailableDates: failed on %s: %v", date.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	default:
		uc.logger.Error("GetAvailableDates: failed on %s: %v", date.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

// startOfDay обнуляет время, сохраняя часовой пояс
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
