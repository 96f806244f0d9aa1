package delete_working_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/service/workinghours"
)

const (
	msgInvalidStaffID = "некорректный ID сотрудника"
	msgMissingStaffID = "отсутствует ID сотрудника"
	msgForbidden      = "можно удалить только свои рабочие часы"
	msgNotFound       = "у сотрудника нет собственных рабочих часов"
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

// Handle DELETE /api/v1/staff/{staffId}/working-hours
// После удаления для сотрудника действуют рабочие часы по умолчанию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := handlers.PathID(r, "staffId")
	if err != nil {
		h.logger.Warn("DELETE /staff/{id}/working-hours - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	requesterID, ok := middleware.GetStaffID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /staff/{id}/working-hours - Missing staff ID")
		handlers.RespondUnauthorized(w, msgMissingStaffID)
		return
	}

	if err := h.service.Delete(r.Context(), staffID, requesterID); err != nil {
		switch {
		case errors.Is(err, workinghours.ErrAccessDenied):
			h.logger.Warn("DELETE /staff/{id}/working-hours - Access denied: staff_id=%d, requester_id=%d", staffID, requesterID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, workinghours.ErrWorkingHoursNotFound):
			h.logger.Warn("DELETE /staff/{id}/working-hours - Nothing to delete: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, workinghours.ErrStoreUnavailable):
			h.logger.Error("DELETE /staff/{id}/working-hours - Store unavailable: staff_id=%d, error=%v", staffID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("DELETE /staff/{id}/working-hours - Failed to delete working hours: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /staff/{id}/working-hours - Working hours reset to default: staff_id=%d", staffID)
	handlers.RespondNoContent(w)
}
