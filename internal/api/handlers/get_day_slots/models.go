package get_day_slots

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getDaySlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_day_slots"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	StartTime string `json:"startTime"` // "10:00"
	Available bool   `json:"available"`
}

// DaySlotsResponse HTTP модель ответа
type DaySlotsResponse struct {
	StaffID         int64          `json:"staffId"`
	Date            string         `json:"date"` // "2025-10-15"
	WorkStart       string         `json:"workStart"`
	WorkEnd         string         `json:"workEnd"`
	IntervalMinutes int            `json:"intervalMinutes"`
	Slots           []SlotResponse `json:"slots"`
	AvailableCount  int            `json:"availableCount"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySlots.Response) *DaySlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime: s.StartTime.String(),
			Available: s.Available,
		}
	}

	return &DaySlotsResponse{
		StaffID:         resp.StaffID,
		Date:            resp.Date.Format(domain.DateFormat),
		WorkStart:       resp.WorkingHours.Start.String(),
		WorkEnd:         resp.WorkingHours.End.String(),
		IntervalMinutes: resp.WorkingHours.IntervalMinutes,
		Slots:           slots,
		AvailableCount:  domain.CountAvailable(resp.Slots),
	}
}
