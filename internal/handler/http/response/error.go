package response

import (
	"errors"
	"net/http"

	"github.com/traincore/schedule-backend-go/internal/domain/approval"
	"github.com/traincore/schedule-backend-go/internal/domain/holiday"
	"github.com/traincore/schedule-backend-go/internal/domain/leave"
	"github.com/traincore/schedule-backend-go/internal/domain/overtime"
	"github.com/traincore/schedule-backend-go/internal/domain/schedule"
	"github.com/traincore/schedule-backend-go/internal/pkg/jwt"
	"github.com/traincore/schedule-backend-go/internal/pkg/keylock"
	"github.com/traincore/schedule-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Transport boundary
	case errors.Is(err, jwt.ErrInvalidToken):
		Unauthorized(w, err.Error())

	// Not-found family
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, overtime.ErrDeclarationNotFound):
		NotFound(w, "Overtime declaration not found")
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "No active work schedule for that date")
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Public holiday not found")

	// Malformed input
	case errors.Is(err, leave.ErrInvalidDateRange),
		errors.Is(err, overtime.ErrInvalidInterval),
		errors.Is(err, schedule.ErrInvalidInterval),
		errors.Is(err, schedule.ErrEmptyWeeklyPattern),
		errors.Is(err, holiday.ErrInvalidDateRange):
		BadRequest(w, err.Error(), nil)

	// Business-rule conflicts
	case errors.Is(err, leave.ErrOverlappingLeave),
		errors.Is(err, leave.ErrRetroactiveLeave),
		errors.Is(err, overtime.ErrInsideWorkingHours),
		errors.Is(err, overtime.ErrNotWorkingDay),
		errors.Is(err, overtime.ErrDailyCapExceeded),
		errors.Is(err, overtime.ErrOverlappingOvertime),
		errors.Is(err, schedule.ErrScheduleConflict),
		errors.Is(err, approval.ErrAlreadyProcessed),
		errors.Is(err, approval.ErrStaleConflict),
		errors.Is(err, approval.ErrSuperseded):
		Conflict(w, err.Error())

	case errors.Is(err, approval.ErrNotRequester):
		Forbidden(w, err.Error())

	// Retryable: nothing was mutated
	case errors.Is(err, keylock.ErrLockTimeout):
		Unavailable(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
