package delete_service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/service/services"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
)

type fakeService struct {
	gotID        int64
	gotRequester int64
	err          error
}

func (f *fakeService) Delete(ctx context.Context, id int64, requesterID int64) error {
	f.gotID = id
	f.gotRequester = requesterID
	return f.err
}

func serve(svc ServiceCatalog, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/services/{serviceId}", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodDelete)
	req := httptest.NewRequest(http.MethodDelete, target, nil)
	req.Header.Set(middleware.StaffIDHeader, "7")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, "/api/v1/services/4")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(4), svc.gotID)
	assert.Equal(t, int64(7), svc.gotRequester)
	assert.Empty(t, rec.Body.String())

	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "/api/v1/services/x").Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: services.ErrServiceNotFound}, "/api/v1/services/4").Code)
	assert.Equal(t, http.StatusForbidden, serve(&fakeService{err: services.ErrAccessDenied}, "/api/v1/services/4").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(&fakeService{err: services.ErrStoreUnavailable}, "/api/v1/services/4").Code)
}
