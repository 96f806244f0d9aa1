package check_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	checkSlot "github.com/m04kA/SMC-ScheduleService/internal/usecase/check_slot"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

const (
	msgInvalidStaffID = "некорректный ID сотрудника"
	msgInvalidDate    = "некорректный или отсутствующий параметр date, ожидается YYYY-MM-DD"
	msgInvalidTime    = "некорректный или отсутствующий параметр time, ожидается HH:MM"
	msgInvalidInput   = "некорректные параметры запроса"
	msgStaffNotFound  = "сотрудник не найден"
)

type Handler struct {
	useCase CheckSlotUseCase
	logger  Logger
}

func NewHandler(useCase CheckSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/{staffId}/availability/check?date=2025-10-15&time=10:00
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := handlers.PathID(r, "staffId")
	if err != nil {
		h.logger.Warn("GET /staff/{id}/availability/check - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	date, err := handlers.QueryDate(r, "date")
	if err != nil || date == nil {
		h.logger.Warn("GET /staff/{id}/availability/check - Invalid date: %q", r.URL.Query().Get("date"))
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	startTime, err := types.NewTimeStringFromString(r.URL.Query().Get("time"))
	if err != nil {
		h.logger.Warn("GET /staff/{id}/availability/check - Invalid time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkSlot.Request{
		StaffID:   staffID,
		Date:      *date,
		StartTime: startTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkSlot.ErrInvalidInput):
			h.logger.Warn("GET /staff/{id}/availability/check - Invalid input: staff_id=%d, error=%v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, checkSlot.ErrStaffNotFound):
			h.logger.Warn("GET /staff/{id}/availability/check - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, checkSlot.ErrStoreUnavailable):
			h.logger.Error("GET /staff/{id}/availability/check - Store unavailable: staff_id=%d, error=%v", staffID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /staff/{id}/availability/check - Failed to check slot: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /staff/{id}/availability/check - staff_id=%d, start=%s, free=%t", staffID, startTime, result.Free)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
