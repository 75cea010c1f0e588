// Package integrity orchestrates the schedule-integrity core: it resolves
// "now" once per operation, serializes all mutations for an employee behind
// a keyed lock, runs the pure conflict checks against freshly loaded state,
// computes the workflow transition in memory, and only then performs a
// single persistence write. A failure on any path leaves no half-applied
// state behind.
package integrity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/traincore/schedule-backend-go/internal/domain/approval"
	"github.com/traincore/schedule-backend-go/internal/domain/clock"
	"github.com/traincore/schedule-backend-go/internal/domain/leave"
	"github.com/traincore/schedule-backend-go/internal/domain/overtime"
	"github.com/traincore/schedule-backend-go/internal/domain/schedule"
	"github.com/traincore/schedule-backend-go/internal/pkg/keylock"
	"github.com/traincore/schedule-backend-go/internal/service/conflict"
)

type Service struct {
	clock        clock.Clock
	locks        *keylock.KeyedLock
	lockWait     time.Duration
	overtimeCap  time.Duration
	leaveRepo    leave.Repository
	overtimeRepo overtime.Repository
	schedules    schedule.Service
}

func NewService(
	clk clock.Clock,
	locks *keylock.KeyedLock,
	lockWait time.Duration,
	overtimeCap time.Duration,
	leaveRepo leave.Repository,
	overtimeRepo overtime.Repository,
	schedules schedule.Service,
) *Service {
	return &Service{
		clock:        clk,
		locks:        locks,
		lockWait:     lockWait,
		overtimeCap:  overtimeCap,
		leaveRepo:    leaveRepo,
		overtimeRepo: overtimeRepo,
		schedules:    schedules,
	}
}

func (s *Service) SubmitLeave(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	now := s.clock.Now()
	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	proposed := leave.LeaveRequest{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		Backfill:   req.Backfill,
		Status:     approval.StatusPending,
		CreatedAt:  now,
	}

	release, err := s.locks.Acquire(ctx, req.EmployeeID, s.lockWait)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	defer release()

	existing, err := s.leaveRepo.ListByEmployee(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to load leave requests: %w", err)
	}
	if err := conflict.ValidateLeaveSubmission(proposed, existing, now); err != nil {
		return leave.LeaveRequest{}, err
	}

	created, err := s.leaveRepo.Create(ctx, proposed)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to persist leave request: %w", err)
	}
	slog.Info("leave request submitted",
		"request_id", created.ID, "employee_id", created.EmployeeID,
		"start", req.StartDate, "end", req.EndDate, "backfill", req.Backfill)
	return created, nil
}

func (s *Service) DecideLeave(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveRequest, error) {
	now := s.clock.Now()

	// First load fixes the employee to lock on; state is re-read under
	// the lock before any check runs.
	initial, err := s.leaveRepo.GetByID(ctx, req.RequestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	release, err := s.locks.Acquire(ctx, initial.EmployeeID, s.lockWait)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	defer release()

	current, err := s.leaveRepo.GetByID(ctx, req.RequestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	next, err := approval.Decide(current.Status, req.Approve)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	if req.Approve {
		existing, err := s.leaveRepo.ListByEmployee(ctx, current.EmployeeID)
		if err != nil {
			return leave.LeaveRequest{}, fmt.Errorf("failed to load leave requests: %w", err)
		}
		if err := conflict.ValidateLeaveDecision(current, existing); err != nil {
			return leave.LeaveRequest{}, err
		}
	}

	current.Status = next
	current.DecidedAt = &now
	current.DecidedBy = &req.DeciderID

	status := string(next)
	update := leave.UpdateLeaveRequest{
		ID:        current.ID,
		Status:    &status,
		DecidedAt: current.DecidedAt,
		DecidedBy: current.DecidedBy,
	}
	if err := s.leaveRepo.Update(ctx, update); err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request: %w", err)
	}
	slog.Info("leave request decided",
		"request_id", current.ID, "employee_id", current.EmployeeID,
		"status", status, "decided_by", req.DeciderID)
	return current, nil
}

func (s *Service) CancelLeave(ctx context.Context, req leave.CancelLeaveRequest) (leave.LeaveRequest, error) {
	now := s.clock.Now()

	initial, err := s.leaveRepo.GetByID(ctx, req.RequestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	release, err := s.locks.Acquire(ctx, initial.EmployeeID, s.lockWait)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	defer release()

	current, err := s.leaveRepo.GetByID(ctx, req.RequestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	next, err := approval.Cancel(current.Status, current.EmployeeID, req.RequesterID, req.AdminOverride)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	current.Status = next
	current.CancelledAt = &now
	current.CancelledBy = &req.RequesterID

	status := string(next)
	update := leave.UpdateLeaveRequest{
		ID:          current.ID,
		Status:      &status,
		CancelledAt: current.CancelledAt,
		CancelledBy: current.CancelledBy,
	}
	if err := s.leaveRepo.Update(ctx, update); err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request: %w", err)
	}
	slog.Info("leave request cancelled",
		"request_id", current.ID, "employee_id", current.EmployeeID, "by", req.RequesterID)
	return current, nil
}

func (s *Service) GetLeaveRequest(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return s.leaveRepo.GetByID(ctx, id)
}

func (s *Service) ListLeaveRequests(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	return s.leaveRepo.ListByEmployee(ctx, employeeID)
}

func (s *Service) SubmitOvertime(ctx context.Context, req overtime.SubmitOvertimeRequest) (overtime.Declaration, error) {
	if err := req.Validate(); err != nil {
		return overtime.Declaration{}, err
	}

	proposed, err := req.ToEntity()
	if err != nil {
		return overtime.Declaration{}, err
	}

	now := s.clock.Now()
	proposed.ID = uuid.NewString()
	proposed.Status = approval.StatusPending
	proposed.CreatedAt = now

	release, err := s.locks.Acquire(ctx, proposed.EmployeeID, s.lockWait)
	if err != nil {
		return overtime.Declaration{}, err
	}
	defer release()

	day, err := s.overtimeDay(ctx, proposed.EmployeeID, proposed.Date)
	if err != nil {
		return overtime.Declaration{}, err
	}
	existing, err := s.overtimeRepo.ListByEmployeeDate(ctx, proposed.EmployeeID, proposed.Date)
	if err != nil {
		return overtime.Declaration{}, fmt.Errorf("failed to load overtime declarations: %w", err)
	}
	if err := conflict.ValidateOvertimeSubmission(proposed, existing, day); err != nil {
		return overtime.Declaration{}, err
	}

	created, err := s.overtimeRepo.Create(ctx, proposed)
	if err != nil {
		return overtime.Declaration{}, fmt.Errorf("failed to persist overtime declaration: %w", err)
	}
	slog.Info("overtime declared",
		"declaration_id", created.ID, "employee_id", created.EmployeeID,
		"date", req.Date, "interval", created.Interval.String())
	return created, nil
}

func (s *Service) DecideOvertime(ctx context.Context, req overtime.DecideOvertimeRequest) (overtime.Declaration, error) {
	now := s.clock.Now()

	initial, err := s.overtimeRepo.GetByID(ctx, req.DeclarationID)
	if err != nil {
		return overtime.Declaration{}, err
	}

	release, err := s.locks.Acquire(ctx, initial.EmployeeID, s.lockWait)
	if err != nil {
		return overtime.Declaration{}, err
	}
	defer release()

	current, err := s.overtimeRepo.GetByID(ctx, req.DeclarationID)
	if err != nil {
		return overtime.Declaration{}, err
	}

	next, err := approval.Decide(current.Status, req.Approve)
	if err != nil {
		return overtime.Declaration{}, err
	}

	if req.Approve {
		day, err := s.overtimeDay(ctx, current.EmployeeID, current.Date)
		if err != nil {
			return overtime.Declaration{}, err
		}
		existing, err := s.overtimeRepo.ListByEmployeeDate(ctx, current.EmployeeID, current.Date)
		if err != nil {
			return overtime.Declaration{}, fmt.Errorf("failed to load overtime declarations: %w", err)
		}
		if err := conflict.ValidateOvertimeDecision(current, existing, day); err != nil {
			return overtime.Declaration{}, err
		}
	}

	current.Status = next
	current.DecidedAt = &now
	current.DecidedBy = &req.DeciderID

	status := string(next)
	update := overtime.UpdateDeclarationRequest{
		ID:        current.ID,
		Status:    &status,
		DecidedAt: current.DecidedAt,
		DecidedBy: current.DecidedBy,
	}
	if err := s.overtimeRepo.Update(ctx, update); err != nil {
		return overtime.Declaration{}, fmt.Errorf("failed to update overtime declaration: %w", err)
	}
	slog.Info("overtime decided",
		"declaration_id", current.ID, "employee_id", current.EmployeeID,
		"status", status, "decided_by", req.DeciderID)
	return current, nil
}

func (s *Service) GetDeclaration(ctx context.Context, id string) (overtime.Declaration, error) {
	return s.overtimeRepo.GetByID(ctx, id)
}

func (s *Service) ListDeclarations(ctx context.Context, employeeID string, date time.Time) ([]overtime.Declaration, error) {
	return s.overtimeRepo.ListByEmployeeDate(ctx, employeeID, date)
}

// overtimeDay assembles the per-date context the overtime checks run
// against: the regular interval from the active schedule and the working-day
// verdict that already folds in the holiday calendar.
func (s *Service) overtimeDay(ctx context.Context, employeeID string, date time.Time) (conflict.OvertimeDay, error) {
	day := conflict.OvertimeDay{DailyCap: s.overtimeCap}

	active, err := s.schedules.ActiveScheduleFor(ctx, employeeID, date)
	switch {
	case err == nil:
		if iv, ok := active.IntervalOn(date); ok {
			day.Working = &iv
		}
	case errors.Is(err, schedule.ErrScheduleNotFound):
		// No schedule: every day is non-working for overtime purposes.
	default:
		return conflict.OvertimeDay{}, err
	}

	workingDay, err := s.schedules.IsWorkingDay(ctx, employeeID, date)
	if err != nil {
		return conflict.OvertimeDay{}, err
	}
	day.WorkingDay = workingDay
	return day, nil
}
