package slotguard

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Candidate время, которое займет новая или перенесенная запись
type Candidate struct {
	StaffID         int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	ExcludeID       *int64 // ID переносимой записи, сама с собой она не конфликтует
}

// Guard проверяет, что время записи свободно.
// Вызывается внутри сериализуемой транзакции вместе с записью в БД.
type Guard struct {
	appointmentRepo AppointmentRepository
	policy          domain.ConflictPolicy
	defaultDuration int
	metrics         Metrics
	logger          Logger
}

// NewGuard создает проверку конфликтов
func NewGuard(
	appointmentRepo AppointmentRepository,
	policy domain.ConflictPolicy,
	defaultDuration int,
	metrics Metrics,
	logger Logger,
) *Guard {
	return &Guard{
		appointmentRepo: appointmentRepo,
		policy:          policy,
		defaultDuration: defaultDuration,
		metrics:         metrics,
		logger:          logger,
	}
}

// Policy политика, с которой работает проверка
func (g *Guard) Policy() domain.ConflictPolicy {
	return g.policy
}

// Check возвращает ErrSlotTaken, если время кандидата занято.
//
// Всегда проверяется точное совпадение времени начала.
// При политике overlap дополнительно проверяется пересечение
// [start, start+duration) с интервалами активных записей дня.
func (g *Guard) Check(ctx context.Context, c Candidate) error {
	taken, err := g.appointmentRepo.ExistsAt(ctx, c.StaffID, c.Date, c.StartTime, c.ExcludeID)
	if err != nil {
		g.logger.Error("SlotGuard: failed to check exact slot: %v", err)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if taken {
		return g.reject(c, "start time already booked")
	}

	if g.policy != domain.PolicyOverlap {
		return nil
	}

	candidate, err := domain.NewBookingInterval(c.StartTime, c.DurationMinutes)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCandidate, err)
	}

	date := c.Date
	appointments, err := g.appointmentRepo.ListByFilter(ctx, domain.AppointmentsFilter{
		StaffID: c.StaffID,
		Date:    &date,
	})
	if err != nil {
		g.logger.Error("SlotGuard: failed to list appointments: %v", err)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	others := make([]*domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if c.ExcludeID != nil && a.ID == *c.ExcludeID {
			continue
		}
		others = append(others, a)
	}

	booked, err := domain.BookedIntervals(others, g.defaultDuration)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if domain.Overlaps(candidate.StartOffset, c.DurationMinutes, booked) {
		return g.reject(c, "overlaps another appointment")
	}

	return nil
}

// RecordConflict учитывает конфликт, обнаруженный уникальным индексом БД
func (g *Guard) RecordConflict() {
	g.metrics.IncBookingConflict(string(g.policy))
}

func (g *Guard) reject(c Candidate, reason string) error {
	g.logger.Warn("SlotGuard: staff=%d, date=%s, time=%s rejected: %s",
		c.StaffID, c.Date.Format(domain.DateFormat), c.StartTime, reason)
	g.RecordConflict()
	return fmt.Errorf("%w: %s", ErrSlotTaken, reason)
}
