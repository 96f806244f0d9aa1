package update_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	updateAppointment "github.com/m04kA/SMC-ScheduleService/internal/usecase/update_appointment"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgEmptyUpdate          = "не указано ни одного поля для изменения"
	msgValidationFailed     = "некорректное поле запроса: "
	msgMissingStaffID       = "отсутствует ID сотрудника"
	msgInvalidInput         = "некорректные данные записи"
	msgNotFound             = "запись не найдена"
	msgServiceNotFound      = "услуга не найдена"
	msgForbidden            = "доступ запрещен"
	msgSlotNotAvailable     = "выбранное время занято"
)

type Handler struct {
	useCase   UpdateAppointmentUseCase
	validator *handlers.Validator
	logger    Logger
}

func NewHandler(useCase UpdateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase:   useCase,
		validator: handlers.NewValidator(),
		logger:    logger,
	}
}

// Handle PUT /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := handlers.PathID(r, "appointmentId")
	if err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	staffID, ok := middleware.GetStaffID(r.Context())
	if !ok {
		h.logger.Warn("PUT /appointments/{id} - Missing staff ID")
		handlers.RespondUnauthorized(w, msgMissingStaffID)
		return
	}

	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.IsEmpty() {
		handlers.RespondBadRequest(w, msgEmptyUpdate)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.logger.Warn("PUT /appointments/{id} - Validation failed: appointment_id=%d, error=%v", appointmentID, err)
		handlers.RespondBadRequest(w, msgValidationFailed+handlers.FirstField(err))
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(appointmentID, staffID)
	if err != nil {
		h.logger.Warn("PUT /appointments/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateAppointment.ErrConflict):
			h.logger.Warn("PUT /appointments/{id} - Slot not available: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, updateAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/{id} - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateAppointment.ErrServiceNotFound):
			h.logger.Warn("PUT /appointments/{id} - Service not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, updateAppointment.ErrAccessDenied):
			h.logger.Warn("PUT /appointments/{id} - Access denied: appointment_id=%d, staff_id=%d", appointmentID, staffID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, updateAppointment.ErrInvalidInput):
			h.logger.Warn("PUT /appointments/{id} - Invalid input: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, updateAppointment.ErrStoreUnavailable):
			h.logger.Error("PUT /appointments/{id} - Store unavailable: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("PUT /appointments/{id} - Failed to update appointment: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /appointments/{id} - Appointment updated: appointment_id=%d, date=%s, start=%s, status=%s",
		appointmentID, response.Date, response.StartTime, response.Status)
	handlers.RespondJSON(w, http.StatusOK, response)
}
