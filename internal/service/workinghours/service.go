package workinghours

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	staffRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/staff"
	whRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/workinghours"
	"github.com/m04kA/SMC-ScheduleService/internal/service/workinghours/models"
)

// Service сервис рабочих часов сотрудников.
// Хранит персональные часы и подставляет часы по умолчанию, если их нет
type Service struct {
	whRepo    WorkingHoursRepository
	staffRepo StaffRepository
	defaults  domain.WorkingHours
	logger    Logger
}

// NewService создает новый экземпляр сервиса рабочих часов
func NewService(
	whRepo WorkingHoursRepository,
	staffRepo StaffRepository,
	defaults domain.WorkingHours,
	logger Logger,
) *Service {
	return &Service{
		whRepo:    whRepo,
		staffRepo: staffRepo,
		defaults:  defaults,
		logger:    logger,
	}
}

// Resolve возвращает действующие рабочие часы сотрудника:
// персональные, если они сохранены, иначе значения по умолчанию
func (s *Service) Resolve(ctx context.Context, staffID int64) (domain.WorkingHours, error) {
	wh, err := s.whRepo.GetByStaffID(ctx, staffID)
	if err != nil {
		if errors.Is(err, whRepo.ErrWorkingHoursNotFound) {
			return s.defaults, nil
		}
		s.logger.Error("Resolve: failed to get working hours for staff=%d: %v", staffID, err)
		return domain.WorkingHours{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	// Некорректные сохраненные часы не должны ломать расчет доступности
	if err := wh.WorkingHours.Validate(); err != nil {
		s.logger.Warn("Resolve: stored working hours of staff=%d are invalid, using defaults: %v", staffID, err)
		return s.defaults, nil
	}

	return wh.WorkingHours, nil
}

// Get получает действующие рабочие часы сотрудника
// Публичный метод - доступен всем
func (s *Service) Get(ctx context.Context, staffID int64) (*models.WorkingHoursResponse, error) {
	if staffID <= 0 {
		return nil, fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if err := s.ensureStaffExists(ctx, "Get", staffID); err != nil {
		return nil, err
	}

	wh, err := s.whRepo.GetByStaffID(ctx, staffID)
	if err != nil {
		if errors.Is(err, whRepo.ErrWorkingHoursNotFound) {
			return models.FromDefault(staffID, s.defaults), nil
		}
		s.logger.Error("Get: failed to get working hours for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return models.FromDomain(wh), nil
}

// Update сохраняет персональные рабочие часы сотрудника
// Доступно только самому сотруднику
func (s *Service) Update(ctx context.Context, req *models.UpdateRequest) (*models.WorkingHoursResponse, error) {
	s.logger.Info("Update: staff=%d sets working hours %s-%s/%d by requester=%d",
		req.StaffID, req.Start, req.End, req.IntervalMinutes, req.RequesterID)

	if req.StaffID <= 0 {
		return nil, fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if req.RequesterID != req.StaffID {
		s.logger.Warn("Update: requester=%d is not staff=%d", req.RequesterID, req.StaffID)
		return nil, ErrAccessDenied
	}

	domainWH := req.ToDomain()
	if err := validateWorkingHours(domainWH.WorkingHours); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	if err := s.ensureStaffExists(ctx, "Update", req.StaffID); err != nil {
		return nil, err
	}

	saved, err := s.whRepo.Upsert(ctx, domainWH)
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrStoreUnavailable, err)
	}

	s.logger.Info("Update: successfully saved working hours id=%d for staff=%d", saved.ID, saved.StaffID)
	return models.FromDomain(saved), nil
}

// Delete удаляет персональные рабочие часы, после чего действуют значения по умолчанию
// Доступно только самому сотруднику
func (s *Service) Delete(ctx context.Context, staffID, requesterID int64) error {
	s.logger.Info("Delete: removing working hours of staff=%d by requester=%d", staffID, requesterID)

	if staffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if requesterID != staffID {
		s.logger.Warn("Delete: requester=%d is not staff=%d", requesterID, staffID)
		return ErrAccessDenied
	}

	if err := s.whRepo.DeleteByStaffID(ctx, staffID); err != nil {
		if errors.Is(err, whRepo.ErrWorkingHoursNotFound) {
			return ErrWorkingHoursNotFound
		}
		s.logger.Error("Delete: repository error: %v", err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrStoreUnavailable, err)
	}

	return nil
}

func (s *Service) ensureStaffExists(ctx context.Context, op string, staffID int64) error {
	if _, err := s.staffRepo.GetByID(ctx, staffID); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("%s: staff id=%d not found", op, staffID)
			return ErrStaffNotFound
		}
		s.logger.Error("%s: failed to get staff id=%d: %v", op, staffID, err)
		return fmt.Errorf("%w: failed to get staff: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// validateWorkingHours проверяет рабочие часы и ограничения на интервал
func validateWorkingHours(wh domain.WorkingHours) error {
	if err := wh.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if wh.IntervalMinutes < domain.MinIntervalMinutes || wh.IntervalMinutes > domain.MaxIntervalMinutes {
		return fmt.Errorf("%w: interval must be between %d and %d minutes",
			ErrInvalidInput, domain.MinIntervalMinutes, domain.MaxIntervalMinutes)
	}

	return nil
}
