package check_slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	staffRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/staff"
)

// UseCase проверяет, свободно ли точное время начала у сотрудника.
// Учитывается только совпадение времени начала, длительность записей не учитывается.
type UseCase struct {
	appointmentRepo AppointmentRepository
	staffRepo       StaffRepository
	storeTimeout    time.Duration
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	staffRepo StaffRepository,
	storeTimeout time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		staffRepo:       staffRepo,
		storeTimeout:    storeTimeout,
		logger:          logger,
	}
}

// Execute выполняет проверку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckSlot: staff=%d, date=%s, time=%s",
		req.StaffID, req.Date.Format(domain.DateFormat), req.StartTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckSlot: validation failed: %v", err)
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.storeTimeout)
	defer cancel()

	if _, err := uc.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			uc.logger.Warn("CheckSlot: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("CheckSlot: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrStoreUnavailable, err)
	}

	taken, err := uc.appointmentRepo.ExistsAt(ctx, req.StaffID, req.Date, req.StartTime, nil)
	if err != nil {
		uc.logger.Error("CheckSlot: failed to check slot: %v", err)
		return nil, fmt.Errorf("%w: failed to check slot: %v", ErrStoreUnavailable, err)
	}

	return &Response{
		StaffID:   req.StaffID,
		Date:      req.Date,
		StartTime: req.StartTime,
		Free:      !taken,
	}, nil
}

func validateRequest(req *Request) error {
	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time: %v", ErrInvalidInput, err)
	}

	return nil
}
