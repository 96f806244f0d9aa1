package get_service

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/service/services/models"
)

type ServiceCatalog interface {
	GetByID(ctx context.Context, id int64) (*models.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
