package cutoff

import "github.com/cmlabs-hris/hris-dtr-go/internal/pkg/clock"

type PeriodResponse struct {
	ID        string `json:"id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func NewPeriodResponse(p Period) PeriodResponse {
	return PeriodResponse{
		ID:        p.ID,
		StartDate: clock.FormatDate(p.StartDate),
		EndDate:   clock.FormatDate(p.EndDate),
	}
}
