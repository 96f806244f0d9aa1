package list_services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/service/services"
	"github.com/m04kA/SMC-ScheduleService/internal/service/services/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
)

type fakeService struct {
	got *models.ListRequest
	err error
}

func (f *fakeService) List(ctx context.Context, req *models.ListRequest) (*models.ServiceListResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.ServiceListResponse{
		Services: []models.ServiceResponse{
			{ID: 2, StaffID: 8, Name: "Beard trim", Price: 10},
			{ID: 1, StaffID: 7, Name: "Haircut", Price: 25},
		},
		Total: 2,
	}, nil
}

func serve(svc ServiceCatalog, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/services", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodGet)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, "/api/v1/services")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.got.StaffID)

	var resp models.ServiceListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "Beard trim", resp.Services[0].Name)
}

func TestHandle_StaffFilter(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, "/api/v1/services?staffId=7")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got.StaffID)
	assert.Equal(t, int64(7), *svc.got.StaffID)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "/api/v1/services?staffId=abc").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "/api/v1/services?staffId=0").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(&fakeService{err: services.ErrStoreUnavailable}, "/api/v1/services").Code)
}
