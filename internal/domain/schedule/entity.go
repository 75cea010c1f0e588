package schedule

import (
	"fmt"
	"time"
)

// DayInterval is a working interval within a single day, expressed as
// minutes from midnight. An 09:00-17:00 day is {540, 1020}.
type DayInterval struct {
	StartMinute int
	EndMinute   int
}

func (d DayInterval) Valid() bool {
	return d.StartMinute >= 0 && d.EndMinute <= 24*60 && d.StartMinute < d.EndMinute
}

// Overlaps reports whether two intervals share any minute.
func (d DayInterval) Overlaps(other DayInterval) bool {
	return d.StartMinute < other.EndMinute && other.StartMinute < d.EndMinute
}

// Duration returns the interval length.
func (d DayInterval) Duration() time.Duration {
	return time.Duration(d.EndMinute-d.StartMinute) * time.Minute
}

func (d DayInterval) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d",
		d.StartMinute/60, d.StartMinute%60, d.EndMinute/60, d.EndMinute%60)
}

// WorkSchedule is an employee's recurring weekly pattern, active over an
// effective date range. A weekday absent from Weekly is a non-working day.
// At most one schedule may be active for an employee at any instant.
type WorkSchedule struct {
	ID            string
	EmployeeID    string
	Weekly        map[time.Weekday]DayInterval
	EffectiveFrom time.Time
	EffectiveTo   *time.Time // nil = open-ended
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ActiveOn reports whether the schedule's effective range covers date,
// boundaries inclusive.
func (s WorkSchedule) ActiveOn(date time.Time) bool {
	d := truncateToDay(date)
	if d.Before(truncateToDay(s.EffectiveFrom)) {
		return false
	}
	if s.EffectiveTo != nil && d.After(truncateToDay(*s.EffectiveTo)) {
		return false
	}
	return true
}

// IntervalOn returns the working interval for date's weekday, or false for a
// non-working weekday.
func (s WorkSchedule) IntervalOn(date time.Time) (DayInterval, bool) {
	iv, ok := s.Weekly[date.Weekday()]
	return iv, ok
}

// RangesOverlap reports whether two effective date ranges intersect. A nil
// end means open-ended.
func RangesOverlap(aFrom time.Time, aTo *time.Time, bFrom time.Time, bTo *time.Time) bool {
	if aTo != nil && truncateToDay(*aTo).Before(truncateToDay(bFrom)) {
		return false
	}
	if bTo != nil && truncateToDay(*bTo).Before(truncateToDay(aFrom)) {
		return false
	}
	return true
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
