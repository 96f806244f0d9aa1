package get_available_dates

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getAvailableDates "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_dates"
)

// DateResponse HTTP модель даты окна
type DateResponse struct {
	Date      string `json:"date"` // "2025-10-15"
	Available bool   `json:"available"`
}

// AvailableDatesResponse HTTP модель ответа
type AvailableDatesResponse struct {
	StaffID        int64          `json:"staffId"`
	Dates          []DateResponse `json:"dates"`
	AvailableDates []string       `json:"availableDates"` // только даты со свободными слотами
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDates.Response) *AvailableDatesResponse {
	dates := make([]DateResponse, len(resp.Dates))
	available := make([]string, 0, len(resp.Dates))
	for i, d := range resp.Dates {
		formatted := d.Date.Format(domain.DateFormat)
		dates[i] = DateResponse{Date: formatted, Available: d.Available}
		if d.Available {
			available = append(available, formatted)
		}
	}

	return &AvailableDatesResponse{
		StaffID:        resp.StaffID,
		Dates:          dates,
		AvailableDates: available,
	}
}
