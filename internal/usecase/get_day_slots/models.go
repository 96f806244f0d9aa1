package get_day_slots

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Request модель запроса слотов сотрудника на день
type Request struct {
	StaffID                int64     // ID сотрудника
	Date                   time.Time // Дата (без времени)
	ServiceDurationMinutes *int      // Длительность услуги; по умолчанию равна шагу слотов
	IntervalMinutes        *int      // Переопределение шага слотов (опционально)
}

// Response модель ответа со слотами дня
type Response struct {
	StaffID      int64
	Date         time.Time
	WorkingHours domain.WorkingHours // Рабочие часы с учетом переопределения шага
	Slots        []domain.Slot       // Все слоты в порядке генерации
}
