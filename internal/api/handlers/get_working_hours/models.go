package get_working_hours

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/service/workinghours/models"
)

// WorkingHoursResponse HTTP модель рабочих часов
type WorkingHoursResponse struct {
	StaffID         int64   `json:"staffId"`
	WorkStart       string  `json:"workStart"` // "09:00"
	WorkEnd         string  `json:"workEnd"`   // "18:00"
	IntervalMinutes int     `json:"intervalMinutes"`
	IsDefault       bool    `json:"isDefault"`
	UpdatedAt       *string `json:"updatedAt,omitempty"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.WorkingHoursResponse) *WorkingHoursResponse {
	result := &WorkingHoursResponse{
		StaffID:         resp.StaffID,
		WorkStart:       resp.Start.String(),
		WorkEnd:         resp.End.String(),
		IntervalMinutes: resp.IntervalMinutes,
		IsDefault:       resp.IsDefault,
	}
	if resp.UpdatedAt != nil {
		updatedAt := resp.UpdatedAt.Format(time.RFC3339)
		result.UpdatedAt = &updatedAt
	}
	return result
}
