package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/traincore/schedule-backend-go/internal/domain/clock"
	"github.com/traincore/schedule-backend-go/internal/domain/holiday"
	"github.com/traincore/schedule-backend-go/internal/domain/schedule"
	"github.com/traincore/schedule-backend-go/internal/pkg/keylock"
)

// scheduleServiceImpl enforces the schedule-store invariant: at most one
// schedule active per employee per instant. Writes take the same
// per-employee lock as the integrity core so check-then-insert is atomic.
type scheduleServiceImpl struct {
	repo     schedule.Repository
	calendar holiday.Calendar
	clock    clock.Clock
	locks    *keylock.KeyedLock
	lockWait time.Duration
}

func NewService(repo schedule.Repository, calendar holiday.Calendar, clk clock.Clock, locks *keylock.KeyedLock, lockWait time.Duration) schedule.Service {
	return &scheduleServiceImpl{
		repo:     repo,
		calendar: calendar,
		clock:    clk,
		locks:    locks,
		lockWait: lockWait,
	}
}

func (s *scheduleServiceImpl) CreateSchedule(ctx context.Context, req schedule.CreateScheduleRequest) (schedule.WorkSchedule, error) {
	if err := req.Validate(); err != nil {
		return schedule.WorkSchedule{}, err
	}

	proposed, err := req.ToEntity()
	if err != nil {
		return schedule.WorkSchedule{}, err
	}

	release, err := s.locks.Acquire(ctx, proposed.EmployeeID, s.lockWait)
	if err != nil {
		return schedule.WorkSchedule{}, err
	}
	defer release()

	existing, err := s.repo.ListByEmployee(ctx, proposed.EmployeeID)
	if err != nil {
		return schedule.WorkSchedule{}, fmt.Errorf("failed to list schedules: %w", err)
	}
	for _, other := range existing {
		if schedule.RangesOverlap(proposed.EffectiveFrom, proposed.EffectiveTo, other.EffectiveFrom, other.EffectiveTo) {
			return schedule.WorkSchedule{}, schedule.ErrScheduleConflict
		}
	}

	now := s.clock.Now()
	proposed.ID = uuid.NewString()
	proposed.CreatedAt = now
	proposed.UpdatedAt = now

	created, err := s.repo.Create(ctx, proposed)
	if err != nil {
		return schedule.WorkSchedule{}, fmt.Errorf("failed to create schedule: %w", err)
	}
	return created, nil
}

func (s *scheduleServiceImpl) ActiveScheduleFor(ctx context.Context, employeeID string, date time.Time) (schedule.WorkSchedule, error) {
	return s.repo.GetActive(ctx, employeeID, date)
}

func (s *scheduleServiceImpl) ListSchedules(ctx context.Context, employeeID string) ([]schedule.WorkSchedule, error) {
	return s.repo.ListByEmployee(ctx, employeeID)
}

func (s *scheduleServiceImpl) IsWorkingDay(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	active, err := s.repo.GetActive(ctx, employeeID, date)
	if err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			return false, nil
		}
		return false, err
	}
	if _, ok := active.IntervalOn(date); !ok {
		return false, nil
	}

	isHoliday, err := s.calendar.IsHoliday(ctx, date)
	if err != nil {
		return false, err
	}
	return !isHoliday, nil
}
