package get_available_dates

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Request модель запроса доступных дат
type Request struct {
	StaffID                int64 // ID сотрудника
	WindowDays             *int  // Размер окна в днях, начиная с сегодняшнего (опционально)
	ServiceDurationMinutes *int  // Длительность услуги (опционально)
}

// Response модель ответа: ровно WindowDays дат по возрастанию
type Response struct {
	StaffID int64
	Dates   []domain.DateAvailability
}
