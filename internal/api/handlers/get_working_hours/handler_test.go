package get_working_hours

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/workinghours"
	"github.com/m04kA/SMC-ScheduleService/internal/service/workinghours/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
)

type fakeService struct {
	resp *models.WorkingHoursResponse
	err  error
}

func (f *fakeService) Get(ctx context.Context, staffID int64) (*models.WorkingHoursResponse, error) {
	return f.resp, f.err
}

func serve(svc WorkingHoursService, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/staff/{staffId}/working-hours", NewHandler(svc, logger.NewNop()).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_Default(t *testing.T) {
	svc := &fakeService{resp: models.FromDefault(4, domain.DefaultWorkingHours())}

	rec := serve(svc, "/api/v1/staff/4/working-hours")

	require.Equal(t, http.StatusOK, rec.Code)
	var body WorkingHoursResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, WorkingHoursResponse{StaffID: 4, WorkStart: "09:00", WorkEnd: "18:00", IntervalMinutes: 30, IsDefault: true}, body)
}

func TestHandle_Stored(t *testing.T) {
	updated := time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC)
	svc := &fakeService{resp: models.FromDomain(&domain.StaffWorkingHours{
		StaffID:      4,
		WorkingHours: domain.WorkingHours{Start: "10:00", End: "16:00", IntervalMinutes: 45},
		UpdatedAt:    updated,
	})}

	rec := serve(svc, "/api/v1/staff/4/working-hours")

	require.Equal(t, http.StatusOK, rec.Code)
	var body WorkingHoursResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.False(t, body.IsDefault)
	assert.Equal(t, 45, body.IntervalMinutes)
	require.NotNil(t, body.UpdatedAt)
	assert.Equal(t, "2025-10-01T08:00:00Z", *body.UpdatedAt)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "/api/v1/staff/x/working-hours").Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: workinghours.ErrStaffNotFound}, "/api/v1/staff/4/working-hours").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(&fakeService{err: workinghours.ErrStoreUnavailable}, "/api/v1/staff/4/working-hours").Code)
}
