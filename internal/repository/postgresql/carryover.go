package postgresql

import (
	"context"
	"errors"

	"github.com/gestionahr/gestion-backend-go/internal/domain/leave"
	"github.com/gestionahr/gestion-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type carryOverRepositoryImpl struct {
	db *database.DB
}

func NewCarryOverRepository(db *database.DB) leave.CarryOverRepository {
	return &carryOverRepositoryImpl{db: db}
}

// Upsert implements leave.CarryOverRepository.
func (r *carryOverRepositoryImpl) Upsert(ctx context.Context, co leave.CarryOver) (leave.CarryOver, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO carry_overs (
			id, employee_id, year, days, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, NOW(), NOW()
		)
		ON CONFLICT (employee_id, year) DO UPDATE
		SET days = EXCLUDED.days, updated_at = NOW()
		RETURNING id, employee_id, year, days, created_at, updated_at
	`

	var out leave.CarryOver
	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		co.EmployeeID,
		co.Year,
		co.Days,
	).Scan(&out.ID, &out.EmployeeID, &out.Year, &out.Days, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return leave.CarryOver{}, err
	}
	return out, nil
}

// GetDays implements leave.CarryOverRepository. A missing record is not an
// error: it means no days were carried over.
func (r *carryOverRepositoryImpl) GetDays(ctx context.Context, employeeID string, year int) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT days
		FROM carry_overs
		WHERE employee_id = $1 AND year = $2
	`

	var days int
	err := q.QueryRow(ctx, query, employeeID, year).Scan(&days)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return days, nil
}
