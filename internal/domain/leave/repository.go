package leave

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, r LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]LeaveRequest, error)
	Update(ctx context.Context, req UpdateLeaveRequest) error
}

// UpdateLeaveRequest carries the fields a workflow transition may touch.
// Nil pointers leave the column untouched.
type UpdateLeaveRequest struct {
	ID          string
	Status      *string
	DecidedAt   *time.Time
	DecidedBy   *string
	CancelledAt *time.Time
	CancelledBy *string
}
