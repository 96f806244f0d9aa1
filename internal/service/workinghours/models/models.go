package models

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// UpdateRequest запрос на установку рабочих часов сотрудника
type UpdateRequest struct {
	RequesterID     int64 // ID сотрудника из заголовка X-Staff-ID
	StaffID         int64
	Start           types.TimeString
	End             types.TimeString
	IntervalMinutes int
}

// ToDomain конвертирует запрос в доменную модель
func (r *UpdateRequest) ToDomain() *domain.StaffWorkingHours {
	return &domain.StaffWorkingHours{
		StaffID: r.StaffID,
		WorkingHours: domain.WorkingHours{
			Start:           r.Start,
			End:             r.End,
			IntervalMinutes: r.IntervalMinutes,
		},
	}
}

// WorkingHoursResponse действующие рабочие часы сотрудника
type WorkingHoursResponse struct {
	StaffID         int64
	Start           types.TimeString
	End             types.TimeString
	IntervalMinutes int
	IsDefault       bool       // true, если у сотрудника нет своих часов
	UpdatedAt       *time.Time // nil для значений по умолчанию
}

// FromDomain конвертирует сохраненные рабочие часы в ответ
func FromDomain(wh *domain.StaffWorkingHours) *WorkingHoursResponse {
	updatedAt := wh.UpdatedAt
	return &WorkingHoursResponse{
		StaffID:         wh.StaffID,
		Start:           wh.Start,
		End:             wh.End,
		IntervalMinutes: wh.IntervalMinutes,
		UpdatedAt:       &updatedAt,
	}
}

// FromDefault строит ответ из значений по умолчанию
func FromDefault(staffID int64, wh domain.WorkingHours) *WorkingHoursResponse {
	return &WorkingHoursResponse{
		StaffID:         staffID,
		Start:           wh.Start,
		End:             wh.End,
		IntervalMinutes: wh.IntervalMinutes,
		IsDefault:       true,
	}
}
