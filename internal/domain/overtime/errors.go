package overtime

import "errors"

var (
	ErrDeclarationNotFound = errors.New("overtime declaration not found")
	ErrInvalidInterval     = errors.New("overtime interval end precedes start")
	ErrInsideWorkingHours  = errors.New("overtime overlaps regular working hours")
	ErrNotWorkingDay       = errors.New("date is not a working day and not flagged as holiday overtime")
	ErrDailyCapExceeded    = errors.New("declared overtime exceeds the daily cap")
	ErrOverlappingOvertime = errors.New("overtime overlaps an existing pending or approved declaration")
)
