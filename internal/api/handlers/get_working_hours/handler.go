package get_working_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/service/workinghours"
)

const (
	msgInvalidStaffID = "некорректный ID сотрудника"
	msgStaffNotFound  = "сотрудник не найден"
)

type Handler struct {
	service WorkingHoursService
	logger  Logger
}

func NewHandler(service WorkingHoursService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/{staffId}/working-hours
// Публичный эндпоинт: если у сотрудника нет своих часов, возвращаются значения по умолчанию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := handlers.PathID(r, "staffId")
	if err != nil {
		h.logger.Warn("GET /staff/{id}/working-hours - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	result, err := h.service.Get(r.Context(), staffID)
	if err != nil {
		switch {
		case errors.Is(err, workinghours.ErrStaffNotFound):
			h.logger.Warn("GET /staff/{id}/working-hours - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, workinghours.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStaffID)

		case errors.Is(err, workinghours.ErrStoreUnavailable):
			h.logger.Error("GET /staff/{id}/working-hours - Store unavailable: staff_id=%d, error=%v", staffID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /staff/{id}/working-hours - Failed to get working hours: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /staff/{id}/working-hours - staff_id=%d, default=%t", staffID, result.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
