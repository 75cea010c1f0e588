package overtime

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, d Declaration) (Declaration, error)
	GetByID(ctx context.Context, id string) (Declaration, error)
	ListByEmployeeDate(ctx context.Context, employeeID string, date time.Time) ([]Declaration, error)
	ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]Declaration, error)
	Update(ctx context.Context, req UpdateDeclarationRequest) error
}

// UpdateDeclarationRequest carries the fields a workflow transition may
// touch. Nil pointers leave the column untouched.
type UpdateDeclarationRequest struct {
	ID        string
	Status    *string
	DecidedAt *time.Time
	DecidedBy *string
}
