package get_available_dates

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
	getAvailableDates "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_dates"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
)

type fakeUseCase struct {
	got  *getAvailableDates.Request
	resp *getAvailableDates.Response
	err  error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *getAvailableDates.Request) (*getAvailableDates.Response, error) {
	f.got = req
	return f.resp, f.err
}

func serve(uc GetAvailableDatesUseCase, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/staff/{staffId}/availability/dates", NewHandler(uc, logger.NewNop()).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	day := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &getAvailableDates.Response{
		StaffID: 3,
		Dates: []domain.DateAvailability{
			{Date: day, Available: true},
			{Date: day.AddDate(0, 0, 1), Available: false},
			{Date: day.AddDate(0, 0, 2), Available: true},
		},
	}}

	rec := serve(uc, "/api/v1/staff/3/availability/dates?days=3")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got.WindowDays)
	assert.Equal(t, 3, *uc.got.WindowDays)
	assert.Nil(t, uc.got.ServiceDurationMinutes)

	var body AvailableDatesResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Len(t, body.Dates, 3)
	assert.Equal(t, []string{"2025-10-15", "2025-10-17"}, body.AvailableDates)
}

func TestHandle_DefaultWindowPassesNil(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableDates.Response{StaffID: 3}}

	rec := serve(uc, "/api/v1/staff/3/availability/dates")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, uc.got.WindowDays)

	var body AvailableDatesResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.NotNil(t, body.AvailableDates)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeUseCase{}, "/api/v1/staff/3/availability/dates?days=ten").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeUseCase{err: getAvailableDates.ErrInvalidInput}, "/api/v1/staff/3/availability/dates?days=0").Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeUseCase{err: getAvailableDates.ErrStaffNotFound}, "/api/v1/staff/3/availability/dates").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(&fakeUseCase{err: getAvailableDates.ErrStoreUnavailable}, "/api/v1/staff/3/availability/dates").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeUseCase{err: getAvailableDates.ErrInternal}, "/api/v1/staff/3/availability/dates").Code)
}
