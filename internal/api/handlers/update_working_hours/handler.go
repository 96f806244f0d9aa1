package update_working_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/service/workinghours"
)

const (
	msgInvalidStaffID     = "некорректный ID сотрудника"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "некорректное поле запроса: "
	msgInvalidHours       = "некорректные рабочие часы: начало должно быть раньше конца, шаг от 5 до 480 минут"
	msgMissingStaffID     = "отсутствует ID сотрудника"
	msgForbidden          = "можно менять только свои рабочие часы"
	msgStaffNotFound      = "сотрудник не найден"
)

type Handler struct {
	service   WorkingHoursService
	validator *handlers.Validator
	logger    Logger
}

func NewHandler(service WorkingHoursService, logger Logger) *Handler {
	return &Handler{
		service:   service,
		validator: handlers.NewValidator(),
		logger:    logger,
	}
}

// Handle PUT /api/v1/staff/{staffId}/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := handlers.PathID(r, "staffId")
	if err != nil {
		h.logger.Warn("PUT /staff/{id}/working-hours - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	requesterID, ok := middleware.GetStaffID(r.Context())
	if !ok {
		h.logger.Warn("PUT /staff/{id}/working-hours - Missing staff ID")
		handlers.RespondUnauthorized(w, msgMissingStaffID)
		return
	}

	var req UpdateWorkingHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /staff/{id}/working-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.logger.Warn("PUT /staff/{id}/working-hours - Validation failed: staff_id=%d, error=%v", staffID, err)
		handlers.RespondBadRequest(w, msgValidationFailed+handlers.FirstField(err))
		return
	}

	serviceReq, err := req.ToServiceRequest(staffID, requesterID)
	if err != nil {
		h.logger.Warn("PUT /staff/{id}/working-hours - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, workinghours.ErrAccessDenied):
			h.logger.Warn("PUT /staff/{id}/working-hours - Access denied: staff_id=%d, requester_id=%d", staffID, requesterID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, workinghours.ErrInvalidInput):
			h.logger.Warn("PUT /staff/{id}/working-hours - Invalid working hours: staff_id=%d, error=%v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidHours)

		case errors.Is(err, workinghours.ErrStaffNotFound):
			h.logger.Warn("PUT /staff/{id}/working-hours - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, workinghours.ErrStoreUnavailable):
			h.logger.Error("PUT /staff/{id}/working-hours - Store unavailable: staff_id=%d, error=%v", staffID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("PUT /staff/{id}/working-hours - Failed to update working hours: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /staff/{id}/working-hours - Working hours saved: staff_id=%d, %s-%s/%d",
		staffID, result.Start, result.End, result.IntervalMinutes)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
