package update_working_hours

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/service/workinghours/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// UpdateWorkingHoursRequest HTTP request model
type UpdateWorkingHoursRequest struct {
	WorkStart       string `json:"workStart" validate:"required,clock"`
	WorkEnd         string `json:"workEnd" validate:"required,clock"`
	IntervalMinutes int    `json:"intervalMinutes" validate:"required,gt=0"`
}

// WorkingHoursResponse HTTP модель сохраненных рабочих часов
type WorkingHoursResponse struct {
	StaffID         int64  `json:"staffId"`
	WorkStart       string `json:"workStart"`
	WorkEnd         string `json:"workEnd"`
	IntervalMinutes int    `json:"intervalMinutes"`
	UpdatedAt       string `json:"updatedAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateWorkingHoursRequest) ToServiceRequest(staffID, requesterID int64) (*models.UpdateRequest, error) {
	start, err := types.NewTimeStringFromString(r.WorkStart)
	if err != nil {
		return nil, err
	}

	end, err := types.NewTimeStringFromString(r.WorkEnd)
	if err != nil {
		return nil, err
	}

	return &models.UpdateRequest{
		RequesterID:     requesterID,
		StaffID:         staffID,
		Start:           start,
		End:             end,
		IntervalMinutes: r.IntervalMinutes,
	}, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.WorkingHoursResponse) *WorkingHoursResponse {
	result := &WorkingHoursResponse{
		StaffID:         resp.StaffID,
		WorkStart:       resp.Start.String(),
		WorkEnd:         resp.End.String(),
		IntervalMinutes: resp.IntervalMinutes,
	}
	if resp.UpdatedAt != nil {
		result.UpdatedAt = resp.UpdatedAt.Format(time.RFC3339)
	}
	return result
}
