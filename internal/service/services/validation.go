package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

const (
	maxNameLength = 255
	maxPrice      = 99999999.99 // NUMERIC(10,2)
)

// validateService проверяет услугу перед сохранением.
// Длительность необязательна, но если задана, должна быть в пределах суток работы.
func validateService(s *domain.Service) error {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, maxNameLength)
	}
	s.Name = name

	if s.Price < 0 || s.Price > maxPrice {
		return fmt.Errorf("%w: price must be between 0 and %.2f", ErrInvalidInput, maxPrice)
	}

	if s.DurationMinutes != nil {
		if !s.HasDuration() || *s.DurationMinutes > domain.MaxServiceDurationMinutes {
			return fmt.Errorf("%w: duration must be between 1 and %d minutes", ErrInvalidInput, domain.MaxServiceDurationMinutes)
		}
	}

	return nil
}
