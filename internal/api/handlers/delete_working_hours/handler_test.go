package delete_working_hours

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/service/workinghours"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
)

type fakeService struct {
	gotStaff, gotRequester int64
	err                    error
}

func (f *fakeService) Delete(ctx context.Context, staffID, requesterID int64) error {
	f.gotStaff, f.gotRequester = staffID, requesterID
	return f.err
}

func serve(svc WorkingHoursService, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/staff/{staffId}/working-hours", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodDelete)
	req := httptest.NewRequest(http.MethodDelete, target, nil)
	req.Header.Set(middleware.StaffIDHeader, "4")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, "/api/v1/staff/4/working-hours")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(4), svc.gotStaff)
	assert.Equal(t, int64(4), svc.gotRequester)

	assert.Equal(t, http.StatusForbidden, serve(&fakeService{err: workinghours.ErrAccessDenied}, "/api/v1/staff/5/working-hours").Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: workinghours.ErrWorkingHoursNotFound}, "/api/v1/staff/4/working-hours").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(&fakeService{err: workinghours.ErrStoreUnavailable}, "/api/v1/staff/4/working-hours").Code)
}
