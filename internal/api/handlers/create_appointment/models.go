package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/appointments/models"
	createAppointment "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// CreateAppointmentRequest HTTP request model; сотрудник берется из X-Staff-ID
type CreateAppointmentRequest struct {
	CustomerID int64   `json:"customerId" validate:"required,gt=0"`
	ServiceID  *int64  `json:"serviceId,omitempty" validate:"omitempty,gt=0"`
	Date       string  `json:"date" validate:"required,date"`           // "2025-10-15"
	StartTime  string  `json:"startTime" validate:"required,clock"`     // "10:00"
	Status     *string `json:"status,omitempty" validate:"omitempty,oneof=scheduled confirmed"`
	Notes      *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(staffID int64) (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	var status *domain.AppointmentStatus
	if r.Status != nil {
		s := domain.AppointmentStatus(*r.Status)
		status = &s
	}

	return &createAppointment.Request{
		StaffID:    staffID,
		CustomerID: r.CustomerID,
		ServiceID:  r.ServiceID,
		Date:       date,
		StartTime:  startTime,
		Status:     status,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *models.AppointmentResponse {
	return models.FromDomainAppointment(resp.Appointment)
}
