package update_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/service/services"
)

const (
	msgInvalidServiceID   = "некорректный ID услуги"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "некорректное поле запроса: "
	msgEmptyUpdate        = "нет полей для обновления"
	msgMissingStaffID     = "отсутствует ID сотрудника"
	msgInvalidInput       = "некорректные данные услуги"
	msgNotFound           = "услуга не найдена"
	msgForbidden          = "доступ запрещен"
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

// Handle PUT /api/v1/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID, err := handlers.PathID(r, "serviceId")
	if err != nil {
		h.logger.Warn("PUT /services/{id} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	staffID, ok := middleware.GetStaffID(r.Context())
	if !ok {
		h.logger.Warn("PUT /services/{id} - Missing staff ID")
		handlers.RespondUnauthorized(w, msgMissingStaffID)
		return
	}

	var req UpdateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.IsEmpty() {
		h.logger.Warn("PUT /services/{id} - Empty update: service_id=%d", serviceID)
		handlers.RespondBadRequest(w, msgEmptyUpdate)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.logger.Warn("PUT /services/{id} - Validation failed: service_id=%d, error=%v", serviceID, err)
		handlers.RespondBadRequest(w, msgValidationFailed+handlers.FirstField(err))
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest(serviceID, staffID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrServiceNotFound):
			h.logger.Warn("PUT /services/{id} - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, services.ErrAccessDenied):
			h.logger.Warn("PUT /services/{id} - Access denied: service_id=%d, staff_id=%d", serviceID, staffID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, services.ErrInvalidInput):
			h.logger.Warn("PUT /services/{id} - Invalid input: service_id=%d, error=%v", serviceID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, services.ErrStoreUnavailable):
			h.logger.Error("PUT /services/{id} - Store unavailable: service_id=%d, error=%v", serviceID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("PUT /services/{id} - Failed to update service: service_id=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /services/{id} - Service updated: service_id=%d, staff_id=%d", serviceID, staffID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
