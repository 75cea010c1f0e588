package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/traincore/schedule-backend-go/internal/domain/overtime"
	"github.com/traincore/schedule-backend-go/internal/domain/schedule"
	"github.com/traincore/schedule-backend-go/internal/pkg/database"
)

type overtimeRepositoryImpl struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.Repository {
	return &overtimeRepositoryImpl{db: db}
}

func (r *overtimeRepositoryImpl) Create(ctx context.Context, d overtime.Declaration) (overtime.Declaration, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO overtime_declarations (
			id, employee_id, date, start_minute, end_minute,
			holiday_overtime, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := q.QueryRow(ctx, query,
		d.ID, d.EmployeeID, d.Date, d.Interval.StartMinute, d.Interval.EndMinute,
		d.HolidayOvertime, string(d.Status), d.CreatedAt,
	).Scan(&d.ID)
	if err != nil {
		return overtime.Declaration{}, err
	}
	return d, nil
}

func (r *overtimeRepositoryImpl) GetByID(ctx context.Context, id string) (overtime.Declaration, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, start_minute, end_minute,
		       holiday_overtime, status, created_at, decided_at, decided_by
		FROM overtime_declarations
		WHERE id = $1
	`
	d, err := scanDeclaration(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return overtime.Declaration{}, overtime.ErrDeclarationNotFound
		}
		return overtime.Declaration{}, err
	}
	return d, nil
}

func (r *overtimeRepositoryImpl) ListByEmployeeDate(ctx context.Context, employeeID string, date time.Time) ([]overtime.Declaration, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, start_minute, end_minute,
		       holiday_overtime, status, created_at, decided_at, decided_by
		FROM overtime_declarations
		WHERE employee_id = $1 AND date = $2
		ORDER BY created_at
	`
	rows, err := q.Query(ctx, query, employeeID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var declarations []overtime.Declaration
	for rows.Next() {
		d, err := scanDeclaration(rows)
		if err != nil {
			return nil, err
		}
		declarations = append(declarations, d)
	}
	return declarations, rows.Err()
}

func (r *overtimeRepositoryImpl) ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]overtime.Declaration, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, start_minute, end_minute,
		       holiday_overtime, status, created_at, decided_at, decided_by
		FROM overtime_declarations
		WHERE status = 'pending' AND created_at < $1
		ORDER BY created_at
	`
	rows, err := q.Query(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var declarations []overtime.Declaration
	for rows.Next() {
		d, err := scanDeclaration(rows)
		if err != nil {
			return nil, err
		}
		declarations = append(declarations, d)
	}
	return declarations, rows.Err()
}

func (r *overtimeRepositoryImpl) Update(ctx context.Context, req overtime.UpdateDeclarationRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{}
	args := []interface{}{}
	argNum := 1

	if req.Status != nil {
		setClauses = append(setClauses, fmt.Sprintf("status = $%d", argNum))
		args = append(args, *req.Status)
		argNum++
	}
	if req.DecidedAt != nil {
		setClauses = append(setClauses, fmt.Sprintf("decided_at = $%d", argNum))
		args = append(args, *req.DecidedAt)
		argNum++
	}
	if req.DecidedBy != nil {
		setClauses = append(setClauses, fmt.Sprintf("decided_by = $%d", argNum))
		args = append(args, *req.DecidedBy)
		argNum++
	}
	if len(setClauses) == 0 {
		return nil
	}

	args = append(args, req.ID)
	query := fmt.Sprintf(`UPDATE overtime_declarations SET %s WHERE id = $%d`, strings.Join(setClauses, ", "), argNum)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return overtime.ErrDeclarationNotFound
	}
	return nil
}

func scanDeclaration(row pgx.Row) (overtime.Declaration, error) {
	var d overtime.Declaration
	var start, end int
	err := row.Scan(
		&d.ID, &d.EmployeeID, &d.Date, &start, &end,
		&d.HolidayOvertime, &d.Status, &d.CreatedAt, &d.DecidedAt, &d.DecidedBy,
	)
	if err != nil {
		return overtime.Declaration{}, err
	}
	d.Interval = schedule.DayInterval{StartMinute: start, EndMinute: end}
	return d, nil
}
