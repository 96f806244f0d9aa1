package create_service

import "github.com/m04kA/SMC-ScheduleService/internal/service/services/models"

// CreateServiceRequest HTTP request model; владелец услуги берется из X-Staff-ID
type CreateServiceRequest struct {
	Name            string  `json:"name" validate:"required,max=255"`
	Description     string  `json:"description,omitempty" validate:"max=2000"`
	Price           float64 `json:"price" validate:"gte=0"`
	DurationMinutes *int    `json:"durationMinutes,omitempty" validate:"omitempty,gt=0"` // без длительности используется длительность по умолчанию
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateServiceRequest) ToServiceRequest(staffID int64) *models.CreateRequest {
	return &models.CreateRequest{
		RequesterID:     staffID,
		Name:            r.Name,
		Description:     r.Description,
		Price:           r.Price,
		DurationMinutes: r.DurationMinutes,
	}
}
