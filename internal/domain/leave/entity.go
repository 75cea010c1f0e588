package leave

import (
	"time"

	"github.com/traincore/schedule-backend-go/internal/domain/approval"
)

// LeaveRequest is a span of requested absence. Dates are whole days,
// boundaries inclusive.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	Reason     string

	// Backfill marks an explicitly permitted retroactive submission.
	Backfill bool

	Status    approval.Status
	CreatedAt time.Time
	DecidedAt *time.Time
	DecidedBy *string

	CancelledAt *time.Time
	CancelledBy *string
}

// OverlapsRange reports whether the request's span intersects [start, end],
// boundaries inclusive.
func (r LeaveRequest) OverlapsRange(start, end time.Time) bool {
	s, e := truncateToDay(start), truncateToDay(end)
	return !truncateToDay(r.StartDate).After(e) && !truncateToDay(r.EndDate).Before(s)
}

// Blocking reports whether the request still claims its dates: pending and
// approved requests block overlapping submissions, terminal rejections and
// cancellations do not.
func (r LeaveRequest) Blocking() bool {
	return r.Status == approval.StatusPending || r.Status == approval.StatusApproved
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
