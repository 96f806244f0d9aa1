package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/service"
	staffRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/staff"
	"github.com/m04kA/SMC-ScheduleService/internal/service/services/models"
)

// Service сервис каталога услуг.
// Читать каталог может кто угодно, изменять услугу только ее владелец.
type Service struct {
	serviceRepo ServiceRepository
	staffRepo   StaffRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса услуг
func NewService(serviceRepo ServiceRepository, staffRepo StaffRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		staffRepo:   staffRepo,
		logger:      logger,
	}
}

// Create добавляет услугу в каталог сотрудника, выполняющего запрос
func (s *Service) Create(ctx context.Context, req *models.CreateRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: creating service %q for staff=%d", req.Name, req.RequesterID)

	service := req.ToDomain()
	if err := validateService(service); err != nil {
		s.logger.Warn("Create: invalid service for staff=%d: %v", req.RequesterID, err)
		return nil, err
	}

	if _, err := s.staffRepo.GetByID(ctx, req.RequesterID); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("Create: staff=%d not found", req.RequesterID)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("Create: staff repository error for staff=%d: %v", req.RequesterID, err)
		return nil, fmt.Errorf("%w: Create - staff repository error: %v", ErrStoreUnavailable, err)
	}

	created, err := s.serviceRepo.Create(ctx, service)
	if err != nil {
		s.logger.Error("Create: repository error for staff=%d: %v", req.RequesterID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrStoreUnavailable, err)
	}

	s.logger.Info("Create: successfully created service id=%d for staff=%d", created.ID, created.StaffID)
	return models.FromDomainService(created), nil
}

// GetByID получает услугу по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ServiceResponse, error) {
	s.logger.Info("GetByID: fetching service id=%d", id)

	service, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainService(service), nil
}

// List получает каталог услуг, отсортированный по названию
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.ServiceListResponse, error) {
	if req.StaffID != nil && *req.StaffID <= 0 {
		return nil, fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	services, err := s.serviceRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrStoreUnavailable, err)
	}

	s.logger.Info("List: successfully fetched %d services", len(services))
	return models.FromDomainServiceList(services), nil
}

// Update изменяет услугу
// Изменить можно только свою услугу
func (s *Service) Update(ctx context.Context, req *models.UpdateRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: updating service id=%d by staff=%d", req.ID, req.RequesterID)

	service, err := s.getOwned(ctx, "Update", req.ID, req.RequesterID)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(service)
	if err := validateService(service); err != nil {
		s.logger.Warn("Update: invalid service id=%d: %v", req.ID, err)
		return nil, err
	}

	updated, err := s.serviceRepo.Update(ctx, service)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for service id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrStoreUnavailable, err)
	}

	s.logger.Info("Update: successfully updated service id=%d", req.ID)
	return models.FromDomainService(updated), nil
}

// Delete удаляет услугу
// Удалить можно только свою услугу
func (s *Service) Delete(ctx context.Context, id int64, requesterID int64) error {
	s.logger.Info("Delete: deleting service id=%d by staff=%d", id, requesterID)

	if _, err := s.getOwned(ctx, "Delete", id, requesterID); err != nil {
		return err
	}

	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return ErrServiceNotFound
		}
		s.logger.Error("Delete: repository error for service id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrStoreUnavailable, err)
	}

	s.logger.Info("Delete: successfully deleted service id=%d", id)
	return nil
}

func (s *Service) get(ctx context.Context, op string, id int64) (*domain.Service, error) {
	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("%s: service id=%d not found", op, id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("%s: repository error for service id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrStoreUnavailable, op, err)
	}
	return service, nil
}

func (s *Service) getOwned(ctx context.Context, op string, id, requesterID int64) (*domain.Service, error) {
	service, err := s.get(ctx, op, id)
	if err != nil {
		return nil, err
	}

	if service.StaffID != requesterID {
		s.logger.Warn("%s: staff=%d has no access to service id=%d", op, requesterID, id)
		return nil, ErrAccessDenied
	}

	return service, nil
}
