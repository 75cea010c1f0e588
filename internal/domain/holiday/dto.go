package holiday

import (
	"time"

	"github.com/traincore/schedule-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Label     string `json:"label"`
}

func (r CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Label) {
		errs = append(errs, validator.ValidationError{Field: "label", Message: "label is required"})
	}
	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "invalid date format, use YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "invalid date format, use YYYY-MM-DD"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end date precedes start date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	ID        string    `json:"id"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
}

func ToResponse(h PublicHoliday) HolidayResponse {
	return HolidayResponse{
		ID:        h.ID,
		StartDate: h.StartDate.Format("2006-01-02"),
		EndDate:   h.EndDate.Format("2006-01-02"),
		Label:     h.Label,
		CreatedAt: h.CreatedAt,
	}
}
