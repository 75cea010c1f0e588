package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/traincore/schedule-backend-go/internal/domain/clock"
	"github.com/traincore/schedule-backend-go/internal/domain/leave"
	"github.com/traincore/schedule-backend-go/internal/domain/overtime"
)

// PendingJobs surfaces requests stuck in pending for operational follow-up.
// The sweep only logs; it never mutates request state.
type PendingJobs struct {
	leaveRepo    leave.Repository
	overtimeRepo overtime.Repository
	clock        clock.Clock
	maxAge       time.Duration
	interval     time.Duration
}

func NewPendingJobs(leaveRepo leave.Repository, overtimeRepo overtime.Repository, clk clock.Clock, maxAge, interval time.Duration) *PendingJobs {
	return &PendingJobs{
		leaveRepo:    leaveRepo,
		overtimeRepo: overtimeRepo,
		clock:        clk,
		maxAge:       maxAge,
		interval:     interval,
	}
}

func (j *PendingJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("report_stale_pending_requests", j.interval, j.ReportStalePending)
}

func (j *PendingJobs) ReportStalePending(ctx context.Context) error {
	cutoff := j.clock.Now().Add(-j.maxAge)

	leaves, err := j.leaveRepo.ListPendingOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}
	for _, lr := range leaves {
		slog.Warn("leave request pending past threshold",
			"request_id", lr.ID, "employee_id", lr.EmployeeID, "created_at", lr.CreatedAt)
	}

	declarations, err := j.overtimeRepo.ListPendingOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}
	for _, d := range declarations {
		slog.Warn("overtime declaration pending past threshold",
			"declaration_id", d.ID, "employee_id", d.EmployeeID, "created_at", d.CreatedAt)
	}

	if len(leaves)+len(declarations) > 0 {
		slog.Info("stale pending sweep finished",
			"leave_count", len(leaves), "overtime_count", len(declarations))
	}
	return nil
}
