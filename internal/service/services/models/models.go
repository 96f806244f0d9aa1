package models

import "github.com/m04kA/SMC-ScheduleService/internal/domain"

// CreateRequest запрос на создание услуги; владелец услуги это RequesterID
type CreateRequest struct {
	RequesterID     int64   `json:"-"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	Price           float64 `json:"price"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
}

// ToDomain конвертирует запрос в доменную услугу
func (r *CreateRequest) ToDomain() *domain.Service {
	return &domain.Service{
		StaffID:         r.RequesterID,
		Name:            r.Name,
		Description:     r.Description,
		Price:           r.Price,
		DurationMinutes: r.DurationMinutes,
	}
}

// UpdateRequest запрос на изменение услуги; nil поля не меняются
type UpdateRequest struct {
	ID              int64    `json:"-"`
	RequesterID     int64    `json:"-"`
	Name            *string  `json:"name,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	DurationMinutes *int     `json:"durationMinutes,omitempty"`
}

// ApplyTo переносит заданные поля на доменную услугу
func (r *UpdateRequest) ApplyTo(s *domain.Service) {
	if r.Name != nil {
		s.Name = *r.Name
	}
	if r.Description != nil {
		s.Description = *r.Description
	}
	if r.Price != nil {
		s.Price = *r.Price
	}
	if r.DurationMinutes != nil {
		d := *r.DurationMinutes
		s.DurationMinutes = &d
	}
}

// ListRequest запрос на получение каталога услуг
type ListRequest struct {
	StaffID *int64 `json:"staffId,omitempty"` // Только услуги сотрудника (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListRequest) ToDomainFilter() domain.ServicesFilter {
	return domain.ServicesFilter{StaffID: r.StaffID}
}

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              int64   `json:"id"`
	StaffID         int64   `json:"staffId"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	Price           float64 `json:"price"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}

// FromDomainService конвертирует доменную услугу в ответ
func FromDomainService(s *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              s.ID,
		StaffID:         s.StaffID,
		Name:            s.Name,
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
	}
}

// FromDomainServiceList конвертирует список доменных услуг в ответ
func FromDomainServiceList(list []*domain.Service) *ServiceListResponse {
	services := make([]ServiceResponse, 0, len(list))
	for _, s := range list {
		services = append(services, *FromDomainService(s))
	}
	return &ServiceListResponse{
		Services: services,
		Total:    len(services),
	}
}
