package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/appointment"
	serviceRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/service"
	staffRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/staff"
	"github.com/m04kA/SMC-ScheduleService/internal/service/slotguard"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

// UseCase use case для создания записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	staffRepo       StaffRepository
	serviceRepo     ServiceRepository
	guard           SlotGuard
	txManager       TransactionManager
	defaultDuration int
	storeTimeout    time.Duration
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	staffRepo StaffRepository,
	serviceRepo ServiceRepository,
	guard SlotGuard,
	txManager TransactionManager,
	defaultDuration int,
	storeTimeout time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		staffRepo:       staffRepo,
		serviceRepo:     serviceRepo,
		guard:           guard,
		txManager:       txManager,
		defaultDuration: defaultDuration,
		storeTimeout:    storeTimeout,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Проверка времени и вставка выполняются в одной сериализуемой транзакции,
// уникальный индекс активных записей страхует от гонки на уровне БД.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: staff=%d, customer=%d, service=%v, date=%s, time=%s",
		req.StaffID, req.CustomerID, ptr.Value(req.ServiceID, 0), req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.storeTimeout)
	defer cancel()

	// 2. Проверяем существование сотрудника
	if _, err := uc.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			uc.logger.Warn("CreateAppointment: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrStoreUnavailable, err)
	}

	// 3. Получаем услугу, если указана
	var service *domain.Service
	if req.ServiceID != nil {
		s, err := uc.serviceRepo.GetByID(ctx, *req.ServiceID)
		if err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				uc.logger.Warn("CreateAppointment: service id=%d not found", *req.ServiceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", *req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrStoreUnavailable, err)
		}
		if s.StaffID != req.StaffID {
			uc.logger.Warn("CreateAppointment: service id=%d belongs to staff=%d", s.ID, s.StaffID)
			return nil, fmt.Errorf("%w: service belongs to another staff member", ErrInvalidInput)
		}
		service = s
	}

	appointment := &domain.Appointment{
		StaffID:    req.StaffID,
		CustomerID: req.CustomerID,
		ServiceID:  req.ServiceID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		Status:     ptr.Value(req.Status, domain.StatusScheduled),
		Notes:      req.Notes,
	}
	if service != nil {
		appointment.ServiceName = service.Name
		appointment.ServiceDurationMinutes = service.DurationMinutes
	}

	var result *domain.Appointment

	// 4. Проверка времени и создание в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.guard.Check(txCtx, slotguard.Candidate{
			StaffID:         req.StaffID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: appointment.DurationOr(uc.defaultDuration),
		}); err != nil {
			return err
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			return err
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, uc.mapError(err)
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{Appointment: result}, nil
}

func (uc *UseCase) mapError(err error) error {
	switch {
	case errors.Is(err, slotguard.ErrSlotTaken):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case appointmentRepo.IsSlotTaken(err):
		uc.logger.Warn("CreateAppointment: lost race for slot: %v", err)
		uc.guard.RecordConflict()
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case errors.Is(err, slotguard.ErrInvalidCandidate):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
}
