package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/traincore/schedule-backend-go/internal/domain/clock"
	"github.com/traincore/schedule-backend-go/internal/domain/holiday"
)

// CalendarService implements holiday.Calendar on top of the repository and
// carries the thin admin CRUD used by the handlers.
type CalendarService struct {
	repo  holiday.Repository
	clock clock.Clock
}

func NewCalendarService(repo holiday.Repository, clk clock.Clock) *CalendarService {
	return &CalendarService{repo: repo, clock: clk}
}

func (s *CalendarService) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.PublicHoliday, error) {
	if err := req.Validate(); err != nil {
		return holiday.PublicHoliday{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	h := holiday.PublicHoliday{
		ID:        uuid.NewString(),
		StartDate: start,
		EndDate:   end,
		Label:     req.Label,
		CreatedAt: s.clock.Now(),
	}

	created, err := s.repo.Create(ctx, h)
	if err != nil {
		return holiday.PublicHoliday{}, fmt.Errorf("failed to create holiday: %w", err)
	}
	return created, nil
}

func (s *CalendarService) ListHolidays(ctx context.Context) ([]holiday.PublicHoliday, error) {
	return s.repo.List(ctx)
}

func (s *CalendarService) DeleteHoliday(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// IsHoliday reports whether any holiday range covers date, boundaries
// inclusive. Overlapping ranges behave as a union.
func (s *CalendarService) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	overlapping, err := s.repo.Overlapping(ctx, date, date)
	if err != nil {
		return false, fmt.Errorf("failed to look up holidays: %w", err)
	}
	return len(overlapping) > 0, nil
}

func (s *CalendarService) Overlapping(ctx context.Context, start, end time.Time) ([]holiday.PublicHoliday, error) {
	return s.repo.Overlapping(ctx, start, end)
}
