package models

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// ListRequest запрос на получение записей сотрудника
type ListRequest struct {
	RequesterID     int64      `json:"-"`
	StaffID         int64      `json:"staffId"`
	Date            *time.Time `json:"date,omitempty"`            // Фильтр по дате (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отмененные и no-show
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListRequest) ToDomainFilter() domain.AppointmentsFilter {
	return domain.AppointmentsFilter{
		StaffID:         r.StaffID,
		Date:            r.Date,
		IncludeInactive: r.IncludeInactive,
	}
}

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID                     int64   `json:"id"`
	StaffID                int64   `json:"staffId"`
	CustomerID             int64   `json:"customerId"`
	ServiceID              *int64  `json:"serviceId,omitempty"`
	ServiceName            string  `json:"serviceName,omitempty"`
	ServiceDurationMinutes *int    `json:"serviceDurationMinutes,omitempty"`
	Date                   string  `json:"date"`      // "2025-10-15"
	StartTime              string  `json:"startTime"` // "10:00"
	Status                 string  `json:"status"`
	Notes                  *string `json:"notes,omitempty"`
	CreatedAt              string  `json:"createdAt"`
	UpdatedAt              string  `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// FromDomainAppointment конвертирует доменную запись в ответ
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                     a.ID,
		StaffID:                a.StaffID,
		CustomerID:             a.CustomerID,
		ServiceID:              a.ServiceID,
		ServiceName:            a.ServiceName,
		ServiceDurationMinutes: a.ServiceDurationMinutes,
		Date:                   a.Date.Format(domain.DateFormat),
		StartTime:              a.StartTime.String(),
		Status:                 string(a.Status),
		Notes:                  a.Notes,
		CreatedAt:              a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:              a.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainAppointmentList конвертирует список записей
func FromDomainAppointmentList(list []*domain.Appointment) *AppointmentListResponse {
	result := make([]AppointmentResponse, len(list))
	for i, a := range list {
		result[i] = *FromDomainAppointment(a)
	}
	return &AppointmentListResponse{
		Appointments: result,
		Total:        len(result),
	}
}
