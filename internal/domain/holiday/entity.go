package holiday

import "time"

// PublicHoliday is a global non-working date range. Holidays are not
// employee-scoped and ranges are allowed to overlap; overlapping ranges are
// treated as a union.
type PublicHoliday struct {
	ID        string
	StartDate time.Time
	EndDate   time.Time
	Label     string
	CreatedAt time.Time
}

// Covers reports whether date falls inside the holiday range, boundaries
// inclusive.
func (h PublicHoliday) Covers(date time.Time) bool {
	d := truncateToDay(date)
	return !d.Before(truncateToDay(h.StartDate)) && !d.After(truncateToDay(h.EndDate))
}

// Overlaps reports whether the holiday intersects [start, end], boundaries
// inclusive. A leave starting on the last day of a holiday still overlaps.
func (h PublicHoliday) Overlaps(start, end time.Time) bool {
	s, e := truncateToDay(start), truncateToDay(end)
	return !truncateToDay(h.StartDate).After(e) && !truncateToDay(h.EndDate).Before(s)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
