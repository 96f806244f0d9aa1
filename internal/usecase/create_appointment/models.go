package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	StaffID    int64                     // ID сотрудника (из X-Staff-ID)
	CustomerID int64                     // ID клиента
	ServiceID  *int64                    // ID услуги (опционально)
	Date       time.Time                 // Дата записи (без времени)
	StartTime  types.TimeString          // Время начала, например "10:00"
	Status     *domain.AppointmentStatus // scheduled по умолчанию
	Notes      *string                   // Заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	Appointment *domain.Appointment
}
