package update_service

import "github.com/m04kA/SMC-ScheduleService/internal/service/services/models"

// UpdateServiceRequest HTTP request model; отсутствующие поля не меняются
type UpdateServiceRequest struct {
	Name            *string  `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description     *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Price           *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	DurationMinutes *int     `json:"durationMinutes,omitempty" validate:"omitempty,gt=0"`
}

// IsEmpty true, если в запросе нет ни одного поля
func (r *UpdateServiceRequest) IsEmpty() bool {
	return r.Name == nil && r.Description == nil && r.Price == nil && r.DurationMinutes == nil
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateServiceRequest) ToServiceRequest(serviceID, staffID int64) *models.UpdateRequest {
	return &models.UpdateRequest{
		ID:              serviceID,
		RequesterID:     staffID,
		Name:            r.Name,
		Description:     r.Description,
		Price:           r.Price,
		DurationMinutes: r.DurationMinutes,
	}
}
