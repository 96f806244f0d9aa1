package check_slot

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	checkSlot "github.com/m04kA/SMC-ScheduleService/internal/usecase/check_slot"
)

// CheckSlotResponse HTTP модель ответа
type CheckSlotResponse struct {
	StaffID   int64  `json:"staffId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	Free      bool   `json:"free"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkSlot.Response) *CheckSlotResponse {
	return &CheckSlotResponse{
		StaffID:   resp.StaffID,
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime.String(),
		Free:      resp.Free,
	}
}
