package update_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/appointment"
	serviceRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/service"
	"github.com/m04kA/SMC-ScheduleService/internal/service/slotguard"
)

// UseCase use case для изменения записи (перенос, смена услуги, статуса, заметок)
type UseCase struct {
	appointmentRepo AppointmentRepository
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
	serviceRepo ServiceRepository,
	guard SlotGuard,
	txManager TransactionManager,
	defaultDuration int,
	storeTimeout time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		guard:           guard,
		txManager:       txManager,
		defaultDuration: defaultDuration,
		storeTimeout:    storeTimeout,
		logger:          logger,
	}
}

// Execute выполняет use case изменения записи.
// Время проверяется повторно, только если меняется дата, время или услуга,
// либо неактивная запись снова становится активной. Сама запись при проверке исключается.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointment: appointment=%d by staff=%d", req.AppointmentID, req.RequesterID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAppointment: validation failed: %v", err)
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.storeTimeout)
	defer cancel()

	var result *domain.Appointment

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Текущая запись и права доступа
		appointment, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("UpdateAppointment: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: failed to get appointment: %v", ErrStoreUnavailable, err)
		}

		if appointment.StaffID != req.RequesterID {
			uc.logger.Warn("UpdateAppointment: staff=%d has no access to appointment id=%d", req.RequesterID, req.AppointmentID)
			return ErrAccessDenied
		}

		wasActive := appointment.IsActive()
		rescheduled, err := uc.apply(txCtx, appointment, req)
		if err != nil {
			return err
		}

		// Переносить можно только запланированную или подтвержденную запись
		if rescheduled && !appointment.CanBeModified() {
			uc.logger.Warn("UpdateAppointment: appointment id=%d with status %s cannot be rescheduled", appointment.ID, appointment.Status)
			return fmt.Errorf("%w: appointment with status %s cannot be rescheduled", ErrInvalidInput, appointment.Status)
		}

		// 2. Повторная проверка времени
		reactivated := !wasActive && appointment.IsActive()
		if appointment.IsActive() && (rescheduled || reactivated) {
			if err := uc.guard.Check(txCtx, slotguard.Candidate{
				StaffID:         appointment.StaffID,
				Date:            appointment.Date,
				StartTime:       appointment.StartTime,
				DurationMinutes: appointment.DurationOr(uc.defaultDuration),
				ExcludeID:       &appointment.ID,
			}); err != nil {
				return err
			}
		}

		// 3. Сохранение
		updated, err := uc.appointmentRepo.Update(txCtx, appointment)
		if err != nil {
			return err
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, uc.mapError(err)
	}

	uc.logger.Info("UpdateAppointment: successfully updated appointment id=%d", result.ID)

	return &Response{Appointment: result}, nil
}

// apply переносит изменения запроса в запись и возвращает true,
// если поменялись дата, время или услуга
func (uc *UseCase) apply(ctx context.Context, a *domain.Appointment, req *Request) (bool, error) {
	rescheduled := false

	if req.Date != nil && !sameDay(*req.Date, a.Date) {
		a.Date = *req.Date
		rescheduled = true
	}

	if req.StartTime != nil && !req.StartTime.Equal(a.StartTime) {
		a.StartTime = *req.StartTime
		rescheduled = true
	}

	if req.ServiceID != nil && (a.ServiceID == nil || *a.ServiceID != *req.ServiceID) {
		service, err := uc.serviceRepo.GetByID(ctx, *req.ServiceID)
		if err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				uc.logger.Warn("UpdateAppointment: service id=%d not found", *req.ServiceID)
				return false, ErrServiceNotFound
			}
			return false, fmt.Errorf("%w: failed to get service: %v", ErrStoreUnavailable, err)
		}
		if service.StaffID != a.StaffID {
			return false, fmt.Errorf("%w: service belongs to another staff member", ErrInvalidInput)
		}

		serviceID := service.ID
		a.ServiceID = &serviceID
		a.ServiceName = service.Name
		a.ServiceDurationMinutes = service.DurationMinutes
		rescheduled = true
	}

	if req.Status != nil {
		a.Status = *req.Status
	}

	if req.Notes != nil {
		a.Notes = req.Notes
	}

	return rescheduled, nil
}

func (uc *UseCase) mapError(err error) error {
	switch {
	case errors.Is(err, ErrAppointmentNotFound),
		errors.Is(err, ErrAccessDenied),
		errors.Is(err, ErrServiceNotFound),
		errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrStoreUnavailable):
		return err
	case errors.Is(err, slotguard.ErrSlotTaken):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case appointmentRepo.IsSlotTaken(err):
		uc.logger.Warn("UpdateAppointment: lost race for slot: %v", err)
		uc.guard.RecordConflict()
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
		return ErrAppointmentNotFound
	case errors.Is(err, slotguard.ErrInvalidCandidate):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		uc.logger.Error("UpdateAppointment: failed to update appointment: %v", err)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
