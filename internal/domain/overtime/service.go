package overtime

import (
	"context"
	"time"
)

// Service is implemented by the schedule-integrity core.
type Service interface {
	SubmitOvertime(ctx context.Context, req SubmitOvertimeRequest) (Declaration, error)
	DecideOvertime(ctx context.Context, req DecideOvertimeRequest) (Declaration, error)
	GetDeclaration(ctx context.Context, id string) (Declaration, error)
	ListDeclarations(ctx context.Context, employeeID string, date time.Time) ([]Declaration, error)
}
