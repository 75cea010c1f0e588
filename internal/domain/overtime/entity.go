package overtime

import (
	"time"

	"github.com/traincore/schedule-backend-go/internal/domain/approval"
	"github.com/traincore/schedule-backend-go/internal/domain/schedule"
)

// Declaration is overtime declared for a single date, as an interval in
// minutes-of-day outside the employee's regular working hours.
type Declaration struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Interval   schedule.DayInterval

	// HolidayOvertime marks the distinct, permitted case of overtime on a
	// non-working day or public holiday.
	HolidayOvertime bool

	Status    approval.Status
	CreatedAt time.Time
	DecidedAt *time.Time
	DecidedBy *string
}

// SameDate reports whether the declaration is for the given calendar date.
func (d Declaration) SameDate(date time.Time) bool {
	y1, m1, d1 := d.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Blocking reports whether the declaration still counts toward the daily cap
// and overlap checks: pending and approved declarations do, rejected ones
// do not.
func (d Declaration) Blocking() bool {
	return d.Status == approval.StatusPending || d.Status == approval.StatusApproved
}
