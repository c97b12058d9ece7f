package attendance

import (
	"context"
	"time"
)

// Repository - interface for the fichajes table
type Repository interface {
	Create(ctx context.Context, f Fichaje) (Fichaje, error)
	// GetOpen returns the employee's fichaje without a clock-out, if any.
	GetOpen(ctx context.Context, employeeID string) (Fichaje, error)
	Close(ctx context.Context, id string, clockOut time.Time) error
	ListByEmployeeInRange(ctx context.Context, employeeID string, from, to time.Time) ([]Fichaje, error)
}
