package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrInvalidDateRange     = errors.New("leave end date precedes start date")
	ErrRetroactiveLeave     = errors.New("leave starts in the past and is not flagged as backfill")
	ErrOverlappingLeave     = errors.New("leave overlaps an existing pending or approved request")
)
