package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/traincore/schedule-backend-go/internal/domain/schedule"
	"github.com/traincore/schedule-backend-go/internal/pkg/database"
)

type workScheduleRepositoryImpl struct {
	db *database.DB
}

func NewWorkScheduleRepository(db *database.DB) schedule.Repository {
	return &workScheduleRepositoryImpl{db: db}
}

// Create inserts the schedule row and its weekly pattern atomically.
func (r *workScheduleRepositoryImpl) Create(ctx context.Context, s schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		q := GetQuerier(txCtx, r.db)

		query := `
			INSERT INTO work_schedules (id, employee_id, effective_from, effective_to, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`
		if _, err := q.Exec(ctx, query, s.ID, s.EmployeeID, s.EffectiveFrom, s.EffectiveTo, s.CreatedAt, s.UpdatedAt); err != nil {
			return err
		}

		dayQuery := `
			INSERT INTO work_schedule_days (work_schedule_id, day_of_week, start_minute, end_minute)
			VALUES ($1, $2, $3, $4)
		`
		for wd, iv := range s.Weekly {
			if _, err := q.Exec(ctx, dayQuery, s.ID, int(wd), iv.StartMinute, iv.EndMinute); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return schedule.WorkSchedule{}, err
	}
	return s, nil
}

func (r *workScheduleRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, effective_from, effective_to, created_at, updated_at
		FROM work_schedules
		WHERE id = $1
	`
	var s schedule.WorkSchedule
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.EmployeeID, &s.EffectiveFrom, &s.EffectiveTo, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.WorkSchedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.WorkSchedule{}, err
	}
	if err := r.loadWeekly(ctx, &s); err != nil {
		return schedule.WorkSchedule{}, err
	}
	return s, nil
}

func (r *workScheduleRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, effective_from, effective_to, created_at, updated_at
		FROM work_schedules
		WHERE employee_id = $1
		ORDER BY effective_from
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []schedule.WorkSchedule
	for rows.Next() {
		var s schedule.WorkSchedule
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.EffectiveFrom, &s.EffectiveTo, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range schedules {
		if err := r.loadWeekly(ctx, &schedules[i]); err != nil {
			return nil, err
		}
	}
	return schedules, nil
}

func (r *workScheduleRepositoryImpl) GetActive(ctx context.Context, employeeID string, date time.Time) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, effective_from, effective_to, created_at, updated_at
		FROM work_schedules
		WHERE employee_id = $1
		  AND effective_from <= $2
		  AND (effective_to IS NULL OR effective_to >= $2)
	`
	var s schedule.WorkSchedule
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&s.ID, &s.EmployeeID, &s.EffectiveFrom, &s.EffectiveTo, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.WorkSchedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.WorkSchedule{}, err
	}
	if err := r.loadWeekly(ctx, &s); err != nil {
		return schedule.WorkSchedule{}, err
	}
	return s, nil
}

func (r *workScheduleRepositoryImpl) loadWeekly(ctx context.Context, s *schedule.WorkSchedule) error {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT day_of_week, start_minute, end_minute
		FROM work_schedule_days
		WHERE work_schedule_id = $1
		ORDER BY day_of_week
	`
	rows, err := q.Query(ctx, query, s.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	s.Weekly = make(map[time.Weekday]schedule.DayInterval)
	for rows.Next() {
		var day, start, end int
		if err := rows.Scan(&day, &start, &end); err != nil {
			return err
		}
		s.Weekly[time.Weekday(day)] = schedule.DayInterval{StartMinute: start, EndMinute: end}
	}
	return rows.Err()
}
