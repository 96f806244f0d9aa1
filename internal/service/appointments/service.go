package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-ScheduleService/internal/service/appointments/models"
)

// Service сервис для чтения и удаления записей.
// Создание и изменение записей выполняют usecase с проверкой времени
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID
// Сотрудник видит только свои записи
func (s *Service) GetByID(ctx context.Context, id int64, requesterID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for staff=%d", id, requesterID)

	appointment, err := s.getOwned(ctx, "GetByID", id, requesterID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainAppointment(appointment), nil
}

// List получает записи сотрудника, отсортированные по дате и времени
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments for staff=%d, includeInactive=%t", req.StaffID, req.IncludeInactive)

	if req.StaffID <= 0 {
		return nil, fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if req.RequesterID != req.StaffID {
		s.logger.Warn("List: staff=%d has no access to appointments of staff=%d", req.RequesterID, req.StaffID)
		return nil, ErrAccessDenied
	}

	appointments, err := s.appointmentRepo.ListByFilter(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrStoreUnavailable, err)
	}

	s.logger.Info("List: successfully fetched %d appointments for staff=%d", len(appointments), req.StaffID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Delete удаляет запись
// Удалить можно только свою запись
func (s *Service) Delete(ctx context.Context, id int64, requesterID int64) error {
	s.logger.Info("Delete: deleting appointment id=%d by staff=%d", id, requesterID)

	if _, err := s.getOwned(ctx, "Delete", id, requesterID); err != nil {
		return err
	}

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrStoreUnavailable, err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%d", id)
	return nil
}

func (s *Service) getOwned(ctx context.Context, op string, id, requesterID int64) (*domain.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%d not found", op, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrStoreUnavailable, op, err)
	}

	if appointment.StaffID != requesterID {
		s.logger.Warn("%s: staff=%d has no access to appointment id=%d", op, requesterID, id)
		return nil, ErrAccessDenied
	}

	return appointment, nil
}
