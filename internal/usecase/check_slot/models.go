package check_slot

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Request модель запроса проверки времени начала
type Request struct {
	StaffID   int64
	Date      time.Time
	StartTime types.TimeString
}

// Response результат проверки: Free = нет активной записи с тем же временем начала
type Response struct {
	StaffID   int64
	Date      time.Time
	StartTime types.TimeString
	Free      bool
}
