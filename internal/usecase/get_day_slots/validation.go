package get_day_slots

import (
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if d := req.ServiceDurationMinutes; d != nil && (*d <= 0 || *d > domain.MaxServiceDurationMinutes) {
		return fmt.Errorf("%w: duration must be between 1 and %d minutes", ErrInvalidInput, domain.MaxServiceDurationMinutes)
	}

	if i := req.IntervalMinutes; i != nil && (*i < domain.MinIntervalMinutes || *i > domain.MaxIntervalMinutes) {
		return fmt.Errorf("%w: interval must be between %d and %d minutes",
			ErrInvalidInput, domain.MinIntervalMinutes, domain.MaxIntervalMinutes)
	}

	return nil
}
