package leave

import "context"

// Service is implemented by the schedule-integrity core. The caller identity
// on decide/cancel is already verified by the transport layer.
type Service interface {
	SubmitLeave(ctx context.Context, req SubmitLeaveRequest) (LeaveRequest, error)
	DecideLeave(ctx context.Context, req DecideLeaveRequest) (LeaveRequest, error)
	CancelLeave(ctx context.Context, req CancelLeaveRequest) (LeaveRequest, error)
	GetLeaveRequest(ctx context.Context, id string) (LeaveRequest, error)
	ListLeaveRequests(ctx context.Context, employeeID string) ([]LeaveRequest, error)
}
