package holiday

import "errors"

var (
	ErrHolidayNotFound   = errors.New("public holiday not found")
	ErrInvalidDateRange  = errors.New("holiday end date precedes start date")
	ErrLabelRequired     = errors.New("holiday label is required")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
)
