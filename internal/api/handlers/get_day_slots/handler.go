package get_day_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	getDaySlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_day_slots"
)

const (
	msgInvalidStaffID  = "некорректный ID сотрудника"
	msgMissingDate     = "не указана дата, ожидается параметр date=YYYY-MM-DD"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration = "некорректная длительность услуги"
	msgInvalidInterval = "некорректный шаг слотов"
	msgInvalidInput    = "некорректные параметры запроса"
	msgStaffNotFound   = "сотрудник не найден"
)

type Handler struct {
	useCase GetDaySlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetDaySlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/{staffId}/availability/slots?date=2025-10-15&duration=60&interval=30
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := handlers.PathID(r, "staffId")
	if err != nil {
		h.logger.Warn("GET /staff/{id}/availability/slots - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		h.logger.Warn("GET /staff/{id}/availability/slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	if date == nil {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	duration, err := handlers.QueryInt(r, "duration")
	if err != nil {
		h.logger.Warn("GET /staff/{id}/availability/slots - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	interval, err := handlers.QueryInt(r, "interval")
	if err != nil {
		h.logger.Warn("GET /staff/{id}/availability/slots - Invalid interval: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInterval)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDaySlots.Request{
		StaffID:                staffID,
		Date:                   *date,
		ServiceDurationMinutes: duration,
		IntervalMinutes:        interval,
	})
	if err != nil {
		switch {
		case errors.Is(err, getDaySlots.ErrInvalidInput):
			h.logger.Warn("GET /staff/{id}/availability/slots - Invalid input: staff_id=%d, error=%v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getDaySlots.ErrStaffNotFound):
			h.logger.Warn("GET /staff/{id}/availability/slots - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, getDaySlots.ErrStoreUnavailable):
			h.logger.Error("GET /staff/{id}/availability/slots - Store unavailable: staff_id=%d, error=%v", staffID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /staff/{id}/availability/slots - Failed to get slots: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /staff/{id}/availability/slots - Slots calculated: staff_id=%d, date=%s, total=%d",
		staffID, r.URL.Query().Get("date"), len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
