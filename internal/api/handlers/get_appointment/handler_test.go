package get_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/service/appointments"
	"github.com/m04kA/SMC-ScheduleService/internal/service/appointments/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
)

type fakeService struct {
	gotID        int64
	gotRequester int64
	err          error
}

func (f *fakeService) GetByID(ctx context.Context, id int64, requesterID int64) (*models.AppointmentResponse, error) {
	f.gotID, f.gotRequester = id, requesterID
	if f.err != nil {
		return nil, f.err
	}
	return &models.AppointmentResponse{ID: id, StaffID: requesterID, Date: "2025-10-15", StartTime: "10:00", Status: "scheduled"}, nil
}

func serve(svc AppointmentService, target, staffHeader string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/appointments/{appointmentId}", NewHandler(svc, logger.NewNop()).Handle)
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if staffHeader != "" {
		req.Header.Set(middleware.StaffIDHeader, staffHeader)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, "/api/v1/appointments/55", "7")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(55), svc.gotID)
	assert.Equal(t, int64(7), svc.gotRequester)

	var body models.AppointmentResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, int64(55), body.ID)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "/api/v1/appointments/abc", "7").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(&fakeService{}, "/api/v1/appointments/55", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: appointments.ErrAppointmentNotFound}, "/api/v1/appointments/55", "7").Code)
	assert.Equal(t, http.StatusForbidden, serve(&fakeService{err: appointments.ErrAccessDenied}, "/api/v1/appointments/55", "7").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(&fakeService{err: appointments.ErrStoreUnavailable}, "/api/v1/appointments/55", "7").Code)
}
