package update_working_hours

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/service/workinghours"
	"github.com/m04kA/SMC-ScheduleService/internal/service/workinghours/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
)

type fakeService struct {
	got *models.UpdateRequest
	err error
}

func (f *fakeService) Update(ctx context.Context, req *models.UpdateRequest) (*models.WorkingHoursResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	updated := time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC)
	return &models.WorkingHoursResponse{
		StaffID:         req.StaffID,
		Start:           req.Start,
		End:             req.End,
		IntervalMinutes: req.IntervalMinutes,
		UpdatedAt:       &updated,
	}, nil
}

func serve(svc WorkingHoursService, target, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/staff/{staffId}/working-hours", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPut)
	req := httptest.NewRequest(http.MethodPut, target, strings.NewReader(body))
	req.Header.Set(middleware.StaffIDHeader, "4")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, "/api/v1/staff/4/working-hours", `{"workStart":"10:00","workEnd":"16:00","intervalMinutes":45}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got)
	assert.Equal(t, int64(4), svc.got.RequesterID)
	assert.Equal(t, int64(4), svc.got.StaffID)
	assert.Equal(t, "10:00", svc.got.Start.String())

	var body WorkingHoursResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, WorkingHoursResponse{StaffID: 4, WorkStart: "10:00", WorkEnd: "16:00", IntervalMinutes: 45, UpdatedAt: "2025-10-01T08:00:00Z"}, body)
}

func TestHandle_BadBodies(t *testing.T) {
	for _, body := range []string{
		`{"workStart":"10:00","workEnd":"16:00"}`,
		`{"workStart":"1000","workEnd":"16:00","intervalMinutes":30}`,
		`{"workStart":"10:00","workEnd":"16:00","intervalMinutes":-5}`,
	} {
		svc := &fakeService{}
		rec := serve(svc, "/api/v1/staff/4/working-hours", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Nil(t, svc.got, body)
	}
}

func TestHandle_ErrorMapping(t *testing.T) {
	body := `{"workStart":"10:00","workEnd":"16:00","intervalMinutes":45}`
	assert.Equal(t, http.StatusForbidden, serve(&fakeService{err: workinghours.ErrAccessDenied}, "/api/v1/staff/5/working-hours", body).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{err: workinghours.ErrInvalidInput}, "/api/v1/staff/4/working-hours", body).Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: workinghours.ErrStaffNotFound}, "/api/v1/staff/4/working-hours", body).Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(&fakeService{err: workinghours.ErrStoreUnavailable}, "/api/v1/staff/4/working-hours", body).Code)
}
