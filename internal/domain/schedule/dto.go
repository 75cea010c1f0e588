package schedule

import (
	"strings"
	"time"

	"github.com/traincore/schedule-backend-go/internal/pkg/validator"
)

// WeeklyPatternRequest maps lowercase weekday names ("monday"..."sunday") to
// working intervals. Days left out are non-working.
type WeeklyPatternRequest map[string]DayIntervalRequest

type DayIntervalRequest struct {
	Start string `json:"start"` // "HH:MM"
	End   string `json:"end"`
}

type CreateScheduleRequest struct {
	EmployeeID    string               `json:"employee_id"`
	EffectiveFrom string               `json:"effective_from"`
	EffectiveTo   *string              `json:"effective_to,omitempty"`
	Weekly        WeeklyPatternRequest `json:"weekly"`
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func (r CreateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee ID is required"})
	}
	from, okFrom := validator.IsValidDate(r.EffectiveFrom)
	if !okFrom {
		errs = append(errs, validator.ValidationError{Field: "effective_from", Message: "invalid date format, use YYYY-MM-DD"})
	}
	if r.EffectiveTo != nil {
		to, okTo := validator.IsValidDate(*r.EffectiveTo)
		if !okTo {
			errs = append(errs, validator.ValidationError{Field: "effective_to", Message: "invalid date format, use YYYY-MM-DD"})
		} else if okFrom && to.Before(from) {
			errs = append(errs, validator.ValidationError{Field: "effective_to", Message: "effective_to precedes effective_from"})
		}
	}
	if len(r.Weekly) == 0 {
		errs = append(errs, validator.ValidationError{Field: "weekly", Message: "weekly pattern must contain at least one working day"})
	}
	for day, iv := range r.Weekly {
		if _, ok := weekdayNames[strings.ToLower(day)]; !ok {
			errs = append(errs, validator.ValidationError{Field: "weekly." + day, Message: "unknown weekday"})
			continue
		}
		if _, ok := validator.ParseMinuteOfDay(iv.Start); !ok {
			errs = append(errs, validator.ValidationError{Field: "weekly." + day + ".start", Message: "invalid time, use HH:MM"})
		}
		if _, ok := validator.ParseMinuteOfDay(iv.End); !ok {
			errs = append(errs, validator.ValidationError{Field: "weekly." + day + ".end", Message: "invalid time, use HH:MM"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntity converts a validated request to the domain entity. Call Validate
// first; parse errors here are treated as invalid intervals.
func (r CreateScheduleRequest) ToEntity() (WorkSchedule, error) {
	from, ok := validator.IsValidDate(r.EffectiveFrom)
	if !ok {
		return WorkSchedule{}, ErrInvalidDateFormat
	}
	var to *time.Time
	if r.EffectiveTo != nil {
		parsed, ok := validator.IsValidDate(*r.EffectiveTo)
		if !ok {
			return WorkSchedule{}, ErrInvalidDateFormat
		}
		to = &parsed
	}

	weekly := make(map[time.Weekday]DayInterval, len(r.Weekly))
	for day, iv := range r.Weekly {
		wd, ok := weekdayNames[strings.ToLower(day)]
		if !ok {
			return WorkSchedule{}, ErrInvalidInterval
		}
		start, okStart := validator.ParseMinuteOfDay(iv.Start)
		end, okEnd := validator.ParseMinuteOfDay(iv.End)
		if !okStart || !okEnd {
			return WorkSchedule{}, ErrInvalidInterval
		}
		interval := DayInterval{StartMinute: start, EndMinute: end}
		if !interval.Valid() {
			return WorkSchedule{}, ErrInvalidInterval
		}
		weekly[wd] = interval
	}

	return WorkSchedule{
		EmployeeID:    r.EmployeeID,
		Weekly:        weekly,
		EffectiveFrom: from,
		EffectiveTo:   to,
	}, nil
}

type ScheduleResponse struct {
	ID            string            `json:"id"`
	EmployeeID    string            `json:"employee_id"`
	Weekly        map[string]string `json:"weekly"`
	EffectiveFrom string            `json:"effective_from"`
	EffectiveTo   *string           `json:"effective_to,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}

func ToResponse(s WorkSchedule) ScheduleResponse {
	weekly := make(map[string]string, len(s.Weekly))
	for wd, iv := range s.Weekly {
		weekly[strings.ToLower(wd.String())] = iv.String()
	}
	resp := ScheduleResponse{
		ID:            s.ID,
		EmployeeID:    s.EmployeeID,
		Weekly:        weekly,
		EffectiveFrom: s.EffectiveFrom.Format("2006-01-02"),
		CreatedAt:     s.CreatedAt,
	}
	if s.EffectiveTo != nil {
		to := s.EffectiveTo.Format("2006-01-02")
		resp.EffectiveTo = &to
	}
	return resp
}
