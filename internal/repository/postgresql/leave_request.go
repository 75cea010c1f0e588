package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/traincore/schedule-backend-go/internal/domain/leave"
	"github.com/traincore/schedule-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.Repository {
	return &leaveRequestRepositoryImpl{db: db}
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, start_date, end_date, reason, backfill,
			status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := q.QueryRow(ctx, query,
		request.ID, request.EmployeeID, request.StartDate, request.EndDate,
		request.Reason, request.Backfill, string(request.Status), request.CreatedAt,
	).Scan(&request.ID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, start_date, end_date, reason, backfill,
		       status, created_at, decided_at, decided_by, cancelled_at, cancelled_by
		FROM leave_requests
		WHERE id = $1
	`
	var lr leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&lr.ID, &lr.EmployeeID, &lr.StartDate, &lr.EndDate, &lr.Reason, &lr.Backfill,
		&lr.Status, &lr.CreatedAt, &lr.DecidedAt, &lr.DecidedBy, &lr.CancelledAt, &lr.CancelledBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return lr, nil
}

func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, start_date, end_date, reason, backfill,
		       status, created_at, decided_at, decided_by, cancelled_at, cancelled_by
		FROM leave_requests
		WHERE employee_id = $1
		ORDER BY created_at
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var lr leave.LeaveRequest
		if err := rows.Scan(
			&lr.ID, &lr.EmployeeID, &lr.StartDate, &lr.EndDate, &lr.Reason, &lr.Backfill,
			&lr.Status, &lr.CreatedAt, &lr.DecidedAt, &lr.DecidedBy, &lr.CancelledAt, &lr.CancelledBy,
		); err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

func (r *leaveRequestRepositoryImpl) ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, start_date, end_date, reason, backfill,
		       status, created_at, decided_at, decided_by, cancelled_at, cancelled_by
		FROM leave_requests
		WHERE status = 'pending' AND created_at < $1
		ORDER BY created_at
	`
	rows, err := q.Query(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var lr leave.LeaveRequest
		if err := rows.Scan(
			&lr.ID, &lr.EmployeeID, &lr.StartDate, &lr.EndDate, &lr.Reason, &lr.Backfill,
			&lr.Status, &lr.CreatedAt, &lr.DecidedAt, &lr.DecidedBy, &lr.CancelledAt, &lr.CancelledBy,
		); err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

func (r *leaveRequestRepositoryImpl) Update(ctx context.Context, req leave.UpdateLeaveRequest) error {
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
	if req.CancelledAt != nil {
		setClauses = append(setClauses, fmt.Sprintf("cancelled_at = $%d", argNum))
		args = append(args, *req.CancelledAt)
		argNum++
	}
	if req.CancelledBy != nil {
		setClauses = append(setClauses, fmt.Sprintf("cancelled_by = $%d", argNum))
		args = append(args, *req.CancelledBy)
		argNum++
	}
	if len(setClauses) == 0 {
		return nil
	}

	args = append(args, req.ID)
	query := fmt.Sprintf(`UPDATE leave_requests SET %s WHERE id = $%d`, strings.Join(setClauses, ", "), argNum)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}
