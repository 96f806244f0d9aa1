package update_appointment

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Request модель запроса на изменение записи; nil поля не меняются
type Request struct {
	RequesterID   int64 // ID сотрудника из X-Staff-ID
	AppointmentID int64
	Date          *time.Time
	StartTime     *types.TimeString
	ServiceID     *int64
	Status        *domain.AppointmentStatus
	Notes         *string
}

// Response модель ответа с измененной записью
type Response struct {
	Appointment *domain.Appointment
}
