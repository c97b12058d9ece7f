package employee

import "context"

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetByCode(ctx context.Context, code string) (EmployeeResponse, error)
	List(ctx context.Context, includeTerminated bool) ([]EmployeeResponse, error)
	Terminate(ctx context.Context, code string, req TerminateEmployeeRequest) error
}
