package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/gestionahr/gestion-backend-go/internal/domain/employee"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.Repository
}

func NewEmployeeService(employeeRepo employee.Repository) employee.Service {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// Create implements employee.Service.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	hireDate, err := time.Parse(time.DateOnly, req.HireDate)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("invalid hire_date: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		EmployeeCode:     req.EmployeeCode,
		FullName:         req.FullName,
		Email:            req.Email,
		PasswordHash:     string(hash),
		HireDate:         hireDate,
		EntitlementGroup: req.EntitlementGroup,
		Region:           req.Region,
		IsAdmin:          req.IsAdmin,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(created), nil
}

// GetByCode implements employee.Service.
func (s *EmployeeServiceImpl) GetByCode(ctx context.Context, code string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByCode(ctx, code)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// List implements employee.Service.
func (s *EmployeeServiceImpl) List(ctx context.Context, includeTerminated bool) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, includeTerminated)
	if err != nil {
		return nil, err
	}
	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}

// Terminate implements employee.Service.
func (s *EmployeeServiceImpl) Terminate(ctx context.Context, code string, req employee.TerminateEmployeeRequest) error {
	terminationDate, err := time.Parse(time.DateOnly, req.TerminationDate)
	if err != nil {
		return fmt.Errorf("invalid termination_date: %w", err)
	}

	emp, err := s.employeeRepo.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	if emp.TerminationDate != nil {
		return employee.ErrAlreadyTerminated
	}
	return s.employeeRepo.Terminate(ctx, emp.ID, terminationDate)
}
