package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/gestionahr/gestion-backend-go/internal/domain/attendance"
	"github.com/gestionahr/gestion-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.Repository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, f attendance.Fichaje) (attendance.Fichaje, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO fichajes (
			id, employee_id, clock_in, clock_out, source, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, NOW(), NOW()
		)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		f.EmployeeID,
		f.ClockIn,
		f.ClockOut,
		f.Source,
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return attendance.Fichaje{}, err
	}
	return f, nil
}

// GetOpen implements attendance.Repository.
func (r *attendanceRepositoryImpl) GetOpen(ctx context.Context, employeeID string) (attendance.Fichaje, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, clock_in, clock_out, source, created_at, updated_at
		FROM fichajes
		WHERE employee_id = $1 AND clock_out IS NULL
		ORDER BY clock_in DESC
		LIMIT 1
	`

	var f attendance.Fichaje
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&f.ID, &f.EmployeeID, &f.ClockIn, &f.ClockOut, &f.Source, &f.CreatedAt, &f.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return attendance.Fichaje{}, attendance.ErrNotClockedIn
	}
	if err != nil {
		return attendance.Fichaje{}, err
	}
	return f, nil
}

// Close implements attendance.Repository.
func (r *attendanceRepositoryImpl) Close(ctx context.Context, id string, clockOut time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE fichajes
		SET clock_out = $2, updated_at = NOW()
		WHERE id = $1 AND clock_out IS NULL
	`
	commandTag, err := q.Exec(ctx, query, id, clockOut)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return attendance.ErrFichajeNotFound
	}
	return nil
}

// ListByEmployeeInRange implements attendance.Repository.
func (r *attendanceRepositoryImpl) ListByEmployeeInRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Fichaje, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT f.id, f.employee_id, f.clock_in, f.clock_out, f.source,
			   f.created_at, f.updated_at, e.employee_code
		FROM fichajes f
		INNER JOIN employees e ON f.employee_id = e.id
		WHERE f.employee_id = $1 AND f.clock_in >= $2 AND f.clock_in < $3
		ORDER BY f.clock_in DESC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fichajes := make([]attendance.Fichaje, 0)
	for rows.Next() {
		var f attendance.Fichaje
		if err := rows.Scan(
			&f.ID, &f.EmployeeID, &f.ClockIn, &f.ClockOut, &f.Source,
			&f.CreatedAt, &f.UpdatedAt, &f.EmployeeCode,
		); err != nil {
			return nil, err
		}
		fichajes = append(fichajes, f)
	}
	return fichajes, rows.Err()
}
