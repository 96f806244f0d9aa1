package create_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/service/services"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "некорректное поле запроса: "
	msgMissingStaffID     = "отсутствует ID сотрудника"
	msgInvalidInput       = "некорректные данные услуги"
	msgStaffNotFound      = "сотрудник не найден"
)

type Handler struct {
	service   ServiceCatalog
	validator *handlers.Validator
	logger    Logger
}

func NewHandler(service ServiceCatalog, logger Logger) *Handler {
	return &Handler{
		service:   service,
		validator: handlers.NewValidator(),
		logger:    logger,
	}
}

// Handle POST /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, ok := middleware.GetStaffID(r.Context())
	if !ok {
		h.logger.Warn("POST /services - Missing staff ID")
		handlers.RespondUnauthorized(w, msgMissingStaffID)
		return
	}

	var req CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.logger.Warn("POST /services - Validation failed: staff_id=%d, error=%v", staffID, err)
		handlers.RespondBadRequest(w, msgValidationFailed+handlers.FirstField(err))
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(staffID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			h.logger.Warn("POST /services - Invalid input: staff_id=%d, error=%v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, services.ErrStaffNotFound):
			h.logger.Warn("POST /services - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, services.ErrStoreUnavailable):
			h.logger.Error("POST /services - Store unavailable: staff_id=%d, error=%v", staffID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("POST /services - Failed to create service: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /services - Service created: service_id=%d, staff_id=%d", result.ID, staffID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
