package leave

import (
	"time"

	"github.com/traincore/schedule-backend-go/internal/pkg/validator"
)

type SubmitLeaveRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
	Backfill   bool   `json:"backfill"`
}

func (r SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee ID is required"})
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

type DecideLeaveRequest struct {
	RequestID string
	DeciderID string
	Approve   bool
}

type CancelLeaveRequest struct {
	RequestID     string
	RequesterID   string
	AdminOverride bool
}

type LeaveRequestResponse struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employee_id"`
	StartDate  string     `json:"start_date"`
	EndDate    string     `json:"end_date"`
	Reason     string     `json:"reason"`
	Backfill   bool       `json:"backfill"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	DecidedAt  *time.Time `json:"decided_at,omitempty"`
	DecidedBy  *string    `json:"decided_by,omitempty"`
}

func ToResponse(r LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		StartDate:  r.StartDate.Format("2006-01-02"),
		EndDate:    r.EndDate.Format("2006-01-02"),
		Reason:     r.Reason,
		Backfill:   r.Backfill,
		Status:     string(r.Status),
		CreatedAt:  r.CreatedAt,
		DecidedAt:  r.DecidedAt,
		DecidedBy:  r.DecidedBy,
	}
}
