package schedule

import "errors"

var (
	ErrScheduleNotFound   = errors.New("no active work schedule for employee on that date")
	ErrScheduleConflict   = errors.New("effective range overlaps an existing schedule for this employee")
	ErrEmployeeIDRequired = errors.New("employee ID is required")
	ErrInvalidInterval    = errors.New("invalid working interval")
	ErrInvalidDateFormat  = errors.New("invalid date format, use YYYY-MM-DD")
	ErrEmptyWeeklyPattern = errors.New("weekly pattern must contain at least one working day")
)
