package schedule

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, s WorkSchedule) (WorkSchedule, error)
	GetByID(ctx context.Context, id string) (WorkSchedule, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]WorkSchedule, error)

	// GetActive returns the schedule whose effective range covers date.
	// Returns ErrScheduleNotFound when none does.
	GetActive(ctx context.Context, employeeID string, date time.Time) (WorkSchedule, error)
}
