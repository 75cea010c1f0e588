package postgresql

import (
	"context"
	"time"

	"github.com/traincore/schedule-backend-go/internal/domain/holiday"
	"github.com/traincore/schedule-backend-go/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.Repository {
	return &holidayRepositoryImpl{db: db}
}

func (r *holidayRepositoryImpl) Create(ctx context.Context, h holiday.PublicHoliday) (holiday.PublicHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO public_holidays (id, start_date, end_date, label, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, start_date, end_date, label, created_at
	`
	var created holiday.PublicHoliday
	err := q.QueryRow(ctx, query, h.ID, h.StartDate, h.EndDate, h.Label, h.CreatedAt).Scan(
		&created.ID,
		&created.StartDate,
		&created.EndDate,
		&created.Label,
		&created.CreatedAt,
	)
	if err != nil {
		return holiday.PublicHoliday{}, err
	}
	return created, nil
}

func (r *holidayRepositoryImpl) List(ctx context.Context) ([]holiday.PublicHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, start_date, end_date, label, created_at
		FROM public_holidays
		ORDER BY start_date
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []holiday.PublicHoliday
	for rows.Next() {
		var h holiday.PublicHoliday
		if err := rows.Scan(&h.ID, &h.StartDate, &h.EndDate, &h.Label, &h.CreatedAt); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

// Overlapping returns holidays intersecting [start, end], boundaries
// inclusive.
func (r *holidayRepositoryImpl) Overlapping(ctx context.Context, start, end time.Time) ([]holiday.PublicHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, start_date, end_date, label, created_at
		FROM public_holidays
		WHERE start_date <= $2 AND end_date >= $1
		ORDER BY start_date
	`
	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []holiday.PublicHoliday
	for rows.Next() {
		var h holiday.PublicHoliday
		if err := rows.Scan(&h.ID, &h.StartDate, &h.EndDate, &h.Label, &h.CreatedAt); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM public_holidays WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}
