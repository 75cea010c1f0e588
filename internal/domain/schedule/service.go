package schedule

import (
	"context"
	"time"
)

// Service is the schedule store surface used by handlers and the
// schedule-integrity core.
type Service interface {
	CreateSchedule(ctx context.Context, req CreateScheduleRequest) (WorkSchedule, error)
	ActiveScheduleFor(ctx context.Context, employeeID string, date time.Time) (WorkSchedule, error)
	ListSchedules(ctx context.Context, employeeID string) ([]WorkSchedule, error)

	// IsWorkingDay derives from the weekly pattern and the holiday
	// calendar: a working day has a non-empty interval and is not a
	// public holiday.
	IsWorkingDay(ctx context.Context, employeeID string, date time.Time) (bool, error)
}
