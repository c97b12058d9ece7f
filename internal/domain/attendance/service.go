package attendance

import "context"

type Service interface {
	ClockIn(ctx context.Context, employeeID string, req ClockRequest) (FichajeResponse, error)
	ClockOut(ctx context.Context, employeeID string) (FichajeResponse, error)
	ListMine(ctx context.Context, employeeID string, from, to string) ([]FichajeResponse, error)
	ListByEmployeeCode(ctx context.Context, employeeCode string, from, to string) ([]FichajeResponse, error)
}
