package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/gestionahr/gestion-backend-go/internal/domain/employee"
	"github.com/gestionahr/gestion-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, employee_code, full_name, email, password_hash,
	hire_date, termination_date, entitlement_group, region, is_admin,
	created_at, updated_at, deleted_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID,
		&emp.EmployeeCode,
		&emp.FullName,
		&emp.Email,
		&emp.PasswordHash,
		&emp.HireDate,
		&emp.TerminationDate,
		&emp.EntitlementGroup,
		&emp.Region,
		&emp.IsAdmin,
		&emp.CreatedAt,
		&emp.UpdatedAt,
		&emp.DeletedAt,
	)
	return emp, err
}

// Create implements employee.Repository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, employee_code, full_name, email, password_hash,
			hire_date, termination_date, entitlement_group, region, is_admin,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10,
			NOW(), NOW()
		)
		RETURNING ` + employeeColumns

	row := q.QueryRow(ctx, query,
		uuid.NewString(),
		emp.EmployeeCode,
		emp.FullName,
		emp.Email,
		emp.PasswordHash,
		emp.HireDate,
		emp.TerminationDate,
		emp.EntitlementGroup,
		emp.Region,
		emp.IsAdmin,
	)

	created, err := scanEmployee(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "employees_employee_code_key":
				return employee.Employee{}, employee.ErrEmployeeCodeExists
			case "employees_email_key":
				return employee.Employee{}, employee.ErrEmailExists
			}
		}
		return employee.Employee{}, err
	}
	return created, nil
}

// GetByID implements employee.Repository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1 AND deleted_at IS NULL
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, err
}

// GetByCode implements employee.Repository.
func (r *employeeRepositoryImpl) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE employee_code = $1 AND deleted_at IS NULL
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, code))
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, err
}

// List implements employee.Repository.
func (r *employeeRepositoryImpl) List(ctx context.Context, includeTerminated bool) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE deleted_at IS NULL
	`
	if !includeTerminated {
		query += ` AND (termination_date IS NULL OR termination_date >= CURRENT_DATE)`
	}
	query += ` ORDER BY employee_code`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

// Terminate implements employee.Repository.
func (r *employeeRepositoryImpl) Terminate(ctx context.Context, id string, terminationDate time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET termination_date = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL AND termination_date IS NULL
	`
	commandTag, err := q.Exec(ctx, query, id, terminationDate)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrAlreadyTerminated
	}
	return nil
}
