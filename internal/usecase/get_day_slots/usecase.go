package get_day_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	staffRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/staff"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

const metricKind = "day_slots"

// UseCase use case для расчета слотов сотрудника на день
type UseCase struct {
	appointmentRepo AppointmentRepository
	staffRepo       StaffRepository
	workingHours    WorkingHoursProvider
	settings        Settings
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	staffRepo StaffRepository,
	workingHours WorkingHoursProvider,
	settings Settings,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		staffRepo:       staffRepo,
		workingHours:    workingHours,
		settings:        settings,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case получения слотов на день
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySlots: staff=%d, date=%s, duration=%v, interval=%v",
		req.StaffID, req.Date.Format(domain.DateFormat), ptr.Value(req.ServiceDurationMinutes, 0), ptr.Value(req.IntervalMinutes, 0))

	resp, err := uc.Compute(ctx, req)
	if err != nil {
		return nil, err
	}

	uc.metrics.IncAvailabilityQuery(metricKind)
	uc.logger.Info("GetDaySlots: staff=%d, date=%s: %d of %d slots available",
		req.StaffID, req.Date.Format(domain.DateFormat), domain.CountAvailable(resp.Slots), len(resp.Slots))

	return resp, nil
}

// Compute рассчитывает слоты дня без записи метрик.
// Используется также расчетом доступных дат.
//
// Шаги:
// 1. Рабочие часы сотрудника (персональные или по умолчанию) и шаг из запроса
// 2. Активные записи сотрудника на дату
// 3. Интервалы записей: длительность услуги или default_service_duration_minutes
// 4. Кандидаты от начала дня с шагом, строго до конца
// 5. Отметка занятости согласно политике конфликтов
func (uc *UseCase) Compute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDaySlots: validation failed: %v", err)
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.settings.StoreTimeout)
	defer cancel()

	// 1. Проверяем существование сотрудника
	if _, err := uc.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			uc.logger.Warn("GetDaySlots: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("GetDaySlots: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrStoreUnavailable, err)
	}

	// 2. Рабочие часы
	wh, err := uc.workingHours.Resolve(ctx, req.StaffID)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to resolve working hours for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to resolve working hours: %v", ErrStoreUnavailable, err)
	}
	wh = wh.WithInterval(ptr.Value(req.IntervalMinutes, 0))

	// 3. Активные записи на дату
	date := req.Date
	appointments, err := uc.appointmentRepo.ListByFilter(ctx, domain.AppointmentsFilter{
		StaffID: req.StaffID,
		Date:    &date,
	})
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrStoreUnavailable, err)
	}

	booked, err := domain.BookedIntervals(appointments, uc.settings.DefaultServiceDurationMinutes)
	if err != nil {
		uc.logger.Error("GetDaySlots: broken appointment data for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 4. Кандидаты и отметка занятости
	candidateDuration := ptr.Value(req.ServiceDurationMinutes, wh.IntervalMinutes)

	candidates := wh.GenerateSlots()
	if uc.settings.FitServiceBeforeClose {
		candidates = wh.GenerateSlotsFor(candidateDuration)
	}

	return &Response{
		StaffID:      req.StaffID,
		Date:         req.Date,
		WorkingHours: wh,
		Slots:        domain.MarkAvailability(candidates, candidateDuration, booked, uc.settings.Policy),
	}, nil
}
