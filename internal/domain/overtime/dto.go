package overtime

import (
	"time"

	"github.com/traincore/schedule-backend-go/internal/domain/schedule"
	"github.com/traincore/schedule-backend-go/internal/pkg/validator"
)

type SubmitOvertimeRequest struct {
	EmployeeID      string `json:"employee_id"`
	Date            string `json:"date"`
	Start           string `json:"start"` // "HH:MM"
	End             string `json:"end"`
	HolidayOvertime bool   `json:"holiday_overtime"`
}

func (r SubmitOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee ID is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "invalid date format, use YYYY-MM-DD"})
	}
	start, okStart := validator.ParseMinuteOfDay(r.Start)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start", Message: "invalid time, use HH:MM"})
	}
	end, okEnd := validator.ParseMinuteOfDay(r.End)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end", Message: "invalid time, use HH:MM"})
	}
	if okStart && okEnd && end <= start {
		errs = append(errs, validator.ValidationError{Field: "end", Message: "end precedes start"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntity converts a validated request. Call Validate first.
func (r SubmitOvertimeRequest) ToEntity() (Declaration, error) {
	date, ok := validator.IsValidDate(r.Date)
	if !ok {
		return Declaration{}, ErrInvalidInterval
	}
	start, okStart := validator.ParseMinuteOfDay(r.Start)
	end, okEnd := validator.ParseMinuteOfDay(r.End)
	if !okStart || !okEnd || end <= start {
		return Declaration{}, ErrInvalidInterval
	}
	return Declaration{
		EmployeeID:      r.EmployeeID,
		Date:            date,
		Interval:        schedule.DayInterval{StartMinute: start, EndMinute: end},
		HolidayOvertime: r.HolidayOvertime,
	}, nil
}

type DecideOvertimeRequest struct {
	DeclarationID string
	DeciderID     string
	Approve       bool
}

type DeclarationResponse struct {
	ID              string     `json:"id"`
	EmployeeID      string     `json:"employee_id"`
	Date            string     `json:"date"`
	Interval        string     `json:"interval"`
	HolidayOvertime bool       `json:"holiday_overtime"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	DecidedAt       *time.Time `json:"decided_at,omitempty"`
	DecidedBy       *string    `json:"decided_by,omitempty"`
}

func ToResponse(d Declaration) DeclarationResponse {
	return DeclarationResponse{
		ID:              d.ID,
		EmployeeID:      d.EmployeeID,
		Date:            d.Date.Format("2006-01-02"),
		Interval:        d.Interval.String(),
		HolidayOvertime: d.HolidayOvertime,
		Status:          string(d.Status),
		CreatedAt:       d.CreatedAt,
		DecidedAt:       d.DecidedAt,
		DecidedBy:       d.DecidedBy,
	}
}
