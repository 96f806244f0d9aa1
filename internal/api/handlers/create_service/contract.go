package create_service

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/service/services/models"
)

type ServiceCatalog interface {
	Create(ctx context.Context, req *models.CreateRequest) (*models.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
