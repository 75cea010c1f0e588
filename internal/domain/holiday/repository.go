package holiday

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, h PublicHoliday) (PublicHoliday, error)
	List(ctx context.Context) ([]PublicHoliday, error)
	Overlapping(ctx context.Context, start, end time.Time) ([]PublicHoliday, error)
	Delete(ctx context.Context, id string) error
}

// Calendar is the read side consumed by the scheduling core.
type Calendar interface {
	IsHoliday(ctx context.Context, date time.Time) (bool, error)
	Overlapping(ctx context.Context, start, end time.Time) ([]PublicHoliday, error)
}
