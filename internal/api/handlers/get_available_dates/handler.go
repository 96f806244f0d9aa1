package get_available_dates

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	getAvailableDates "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_dates"
)

const (
	msgInvalidStaffID  = "некорректный ID сотрудника"
	msgInvalidDays     = "некорректный размер окна в днях"
	msgInvalidDuration = "некорректная длительность услуги"
	msgInvalidInput    = "некорректные параметры запроса"
	msgStaffNotFound   = "сотрудник не найден"
)

type Handler struct {
	useCase GetAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/{staffId}/availability/dates?days=30&duration=60
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := handlers.PathID(r, "staffId")
	if err != nil {
		h.logger.Warn("GET /staff/{id}/availability/dates - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	days, err := handlers.QueryInt(r, "days")
	if err != nil {
		h.logger.Warn("GET /staff/{id}/availability/dates - Invalid days: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDays)
		return
	}

	duration, err := handlers.QueryInt(r, "duration")
	if err != nil {
		h.logger.Warn("GET /staff/{id}/availability/dates - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableDates.Request{
		StaffID:                staffID,
		WindowDays:             days,
		ServiceDurationMinutes: duration,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDates.ErrInvalidInput):
			h.logger.Warn("GET /staff/{id}/availability/dates - Invalid input: staff_id=%d, error=%v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailableDates.ErrStaffNotFound):
			h.logger.Warn("GET /staff/{id}/availability/dates - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, getAvailableDates.ErrStoreUnavailable):
			h.logger.Error("GET /staff/{id}/availability/dates - Store unavailable: staff_id=%d, error=%v", staffID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /staff/{id}/availability/dates - Failed to get dates: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /staff/{id}/availability/dates - Dates calculated: staff_id=%d, window=%d, available=%d",
		staffID, len(response.Dates), len(response.AvailableDates))
	handlers.RespondJSON(w, http.StatusOK, response)
}
