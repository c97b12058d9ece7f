package employee

import (
	"context"
	"time"
)

// Repository - interface for the employees table
type Repository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByCode(ctx context.Context, code string) (Employee, error)
	List(ctx context.Context, includeTerminated bool) ([]Employee, error)
	Terminate(ctx context.Context, id string, terminationDate time.Time) error
}
