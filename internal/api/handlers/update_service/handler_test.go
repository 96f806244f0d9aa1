package update_service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/service/services"
	"github.com/m04kA/SMC-ScheduleService/internal/service/services/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
)

type fakeService struct {
	got *models.UpdateRequest
	err error
}

func (f *fakeService) Update(ctx context.Context, req *models.UpdateRequest) (*models.ServiceResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	resp := &models.ServiceResponse{ID: req.ID, StaffID: req.RequesterID, Name: "Haircut", Price: 25}
	if req.Price != nil {
		resp.Price = *req.Price
	}
	resp.DurationMinutes = req.DurationMinutes
	return resp, nil
}

func serve(svc ServiceCatalog, target, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/services/{serviceId}", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPut)
	req := httptest.NewRequest(http.MethodPut, target, strings.NewReader(body))
	req.Header.Set(middleware.StaffIDHeader, "7")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, "/api/v1/services/3", `{"price":30,"durationMinutes":60}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, int64(3), svc.got.ID)
	assert.Equal(t, int64(7), svc.got.RequesterID)
	assert.Nil(t, svc.got.Name)

	var resp models.ServiceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 30.0, resp.Price)
	assert.Equal(t, 60, *resp.DurationMinutes)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "/api/v1/services/0", `{"price":1}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "/api/v1/services/3", `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "/api/v1/services/3", `{"durationMinutes":-30}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "/api/v1/services/3", `{"unknown":1}`).Code)

	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: services.ErrServiceNotFound}, "/api/v1/services/3", `{"price":1}`).Code)
	assert.Equal(t, http.StatusForbidden, serve(&fakeService{err: services.ErrAccessDenied}, "/api/v1/services/3", `{"price":1}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{err: services.ErrInvalidInput}, "/api/v1/services/3", `{"price":1}`).Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(&fakeService{err: services.ErrStoreUnavailable}, "/api/v1/services/3", `{"price":1}`).Code)
}
