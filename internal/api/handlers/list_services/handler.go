package list_services

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/service/services"
	"github.com/m04kA/SMC-ScheduleService/internal/service/services/models"
)

const (
	msgInvalidStaffID = "некорректный ID сотрудника"
)

type Handler struct {
	service ServiceCatalog
	logger  Logger
}

func NewHandler(service ServiceCatalog, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/services?staffId=7
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListRequest{}

	if raw := r.URL.Query().Get("staffId"); raw != "" {
		staffID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || staffID <= 0 {
			h.logger.Warn("GET /services - Invalid staffId: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidStaffID)
			return
		}
		req.StaffID = &staffID
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			h.logger.Warn("GET /services - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStaffID)

		case errors.Is(err, services.ErrStoreUnavailable):
			h.logger.Error("GET /services - Store unavailable: error=%v", err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /services - Failed to list services: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services - Services retrieved: total=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
