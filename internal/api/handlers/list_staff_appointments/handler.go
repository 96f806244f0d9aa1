package list_staff_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/service/appointments"
	"github.com/m04kA/SMC-ScheduleService/internal/service/appointments/models"
)

const (
	msgInvalidStaffID       = "некорректный ID сотрудника"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidIncludeFilter = "некорректное значение includeInactive"
	msgMissingStaffID       = "отсутствует ID сотрудника"
	msgForbidden            = "доступ запрещен"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/{staffId}/appointments?date=2025-10-15&includeInactive=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := handlers.PathID(r, "staffId")
	if err != nil {
		h.logger.Warn("GET /staff/{id}/appointments - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	requesterID, ok := middleware.GetStaffID(r.Context())
	if !ok {
		h.logger.Warn("GET /staff/{id}/appointments - Missing staff ID")
		handlers.RespondUnauthorized(w, msgMissingStaffID)
		return
	}

	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		h.logger.Warn("GET /staff/{id}/appointments - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	includeInactive, err := handlers.QueryBool(r, "includeInactive")
	if err != nil {
		h.logger.Warn("GET /staff/{id}/appointments - Invalid includeInactive: %v", err)
		handlers.RespondBadRequest(w, msgInvalidIncludeFilter)
		return
	}

	result, err := h.service.List(r.Context(), &models.ListRequest{
		RequesterID:     requesterID,
		StaffID:         staffID,
		Date:            date,
		IncludeInactive: includeInactive,
	})
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /staff/{id}/appointments - Access denied: staff_id=%d, requester_id=%d", staffID, requesterID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /staff/{id}/appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStaffID)

		case errors.Is(err, appointments.ErrStoreUnavailable):
			h.logger.Error("GET /staff/{id}/appointments - Store unavailable: staff_id=%d, error=%v", staffID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /staff/{id}/appointments - Failed to list appointments: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /staff/{id}/appointments - Appointments retrieved: staff_id=%d, total=%d", staffID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
