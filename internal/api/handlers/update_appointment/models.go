package update_appointment

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/appointments/models"
	updateAppointment "github.com/m04kA/SMC-ScheduleService/internal/usecase/update_appointment"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// UpdateAppointmentRequest HTTP request model; отсутствующие поля не меняются
type UpdateAppointmentRequest struct {
	Date      *string `json:"date,omitempty" validate:"omitempty,date"`
	StartTime *string `json:"startTime,omitempty" validate:"omitempty,clock"`
	ServiceID *int64  `json:"serviceId,omitempty" validate:"omitempty,gt=0"`
	Status    *string `json:"status,omitempty" validate:"omitempty,oneof=scheduled confirmed completed cancelled no_show"`
	Notes     *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// IsEmpty true, если запрос ничего не меняет
func (r *UpdateAppointmentRequest) IsEmpty() bool {
	return r.Date == nil && r.StartTime == nil && r.ServiceID == nil && r.Status == nil && r.Notes == nil
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateAppointmentRequest) ToUseCaseRequest(appointmentID, requesterID int64) (*updateAppointment.Request, error) {
	req := &updateAppointment.Request{
		RequesterID:   requesterID,
		AppointmentID: appointmentID,
		ServiceID:     r.ServiceID,
		Notes:         r.Notes,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if r.StartTime != nil {
		startTime, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = &startTime
	}

	if r.Status != nil {
		status := domain.AppointmentStatus(*r.Status)
		req.Status = &status
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateAppointment.Response) *models.AppointmentResponse {
	return models.FromDomainAppointment(resp.Appointment)
}
