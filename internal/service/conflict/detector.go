// Package conflict holds the pure validation rules of the schedule-integrity
// core. Nothing here touches persistence: callers load the relevant state
// under the per-employee lock and pass it in, together with the single "now"
// resolved for the whole operation.
package conflict

import (
	"time"

	"github.com/traincore/schedule-backend-go/internal/domain/approval"
	"github.com/traincore/schedule-backend-go/internal/domain/leave"
	"github.com/traincore/schedule-backend-go/internal/domain/overtime"
	"github.com/traincore/schedule-backend-go/internal/domain/schedule"
)

// ValidateLeaveSubmission checks a proposed leave request against the
// employee's existing requests as of the given instant.
func ValidateLeaveSubmission(proposed leave.LeaveRequest, existing []leave.LeaveRequest, asOf time.Time) error {
	if proposed.EndDate.Before(proposed.StartDate) {
		return leave.ErrInvalidDateRange
	}
	if !proposed.Backfill && dayOf(proposed.StartDate).Before(dayOf(asOf)) {
		return leave.ErrRetroactiveLeave
	}
	for _, other := range existing {
		if other.ID == proposed.ID || !other.Blocking() {
			continue
		}
		if other.OverlapsRange(proposed.StartDate, proposed.EndDate) {
			return leave.ErrOverlappingLeave
		}
	}
	return nil
}

// ValidateLeaveDecision re-runs the overlap check at decision time. Requests
// approved since submission make the candidate stale; among still-pending
// overlaps the earlier submission wins, so a later candidate is superseded.
func ValidateLeaveDecision(candidate leave.LeaveRequest, existing []leave.LeaveRequest) error {
	for _, other := range existing {
		if other.ID == candidate.ID || !other.Blocking() {
			continue
		}
		if !other.OverlapsRange(candidate.StartDate, candidate.EndDate) {
			continue
		}
		if other.Status == approval.StatusApproved {
			return approval.ErrStaleConflict
		}
		if other.CreatedAt.Before(candidate.CreatedAt) {
			return approval.ErrSuperseded
		}
	}
	return nil
}

// OvertimeDay is the per-date context an overtime check runs against.
type OvertimeDay struct {
	// Working is the regular working interval for the date's weekday, nil
	// when the active schedule has none.
	Working *schedule.DayInterval

	// WorkingDay is the schedule store's verdict: pattern non-empty and
	// not a public holiday.
	WorkingDay bool

	DailyCap time.Duration
}

// ValidateOvertimeSubmission checks a declaration against the employee's
// schedule for that date and the declarations already approved for it.
// Pending declarations do not block submission; racing declarations are
// arbitrated at decision time.
func ValidateOvertimeSubmission(proposed overtime.Declaration, existing []overtime.Declaration, day OvertimeDay) error {
	if !proposed.Interval.Valid() {
		return overtime.ErrInvalidInterval
	}
	if day.Working != nil && proposed.Interval.Overlaps(*day.Working) {
		return overtime.ErrInsideWorkingHours
	}
	if !day.WorkingDay && !proposed.HolidayOvertime {
		return overtime.ErrNotWorkingDay
	}
	if day.DailyCap > 0 {
		total := proposed.Interval.Duration() + approvedTotal(existing, proposed)
		if total > day.DailyCap {
			return overtime.ErrDailyCapExceeded
		}
	}
	return nil
}

// ValidateOvertimeDecision re-runs the checks at decision time against the
// declarations that exist now.
func ValidateOvertimeDecision(candidate overtime.Declaration, existing []overtime.Declaration, day OvertimeDay) error {
	for _, other := range existing {
		if other.ID == candidate.ID || !other.Blocking() {
			continue
		}
		if !other.SameDate(candidate.Date) || !other.Interval.Overlaps(candidate.Interval) {
			continue
		}
		if other.Status == approval.StatusApproved {
			return approval.ErrStaleConflict
		}
		if other.CreatedAt.Before(candidate.CreatedAt) {
			return approval.ErrSuperseded
		}
	}
	if day.DailyCap > 0 {
		total := candidate.Interval.Duration() + approvedTotal(existing, candidate)
		if total > day.DailyCap {
			return approval.ErrStaleConflict
		}
	}
	return nil
}

func approvedTotal(existing []overtime.Declaration, candidate overtime.Declaration) time.Duration {
	var total time.Duration
	for _, other := range existing {
		if other.ID == candidate.ID || other.Status != approval.StatusApproved {
			continue
		}
		if other.SameDate(candidate.Date) {
			total += other.Interval.Duration()
		}
	}
	return total
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
