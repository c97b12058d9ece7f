package postgresql

import (
	"context"
	"time"

	"github.com/gestionahr/gestion-backend-go/internal/domain/calendar"
	"github.com/gestionahr/gestion-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) calendar.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

// Upsert implements calendar.HolidayRepository.
func (r *holidayRepositoryImpl) Upsert(ctx context.Context, holiday calendar.Holiday) (calendar.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (
			id, region, date, name, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, NOW(), NOW()
		)
		ON CONFLICT (region, date) DO UPDATE
		SET name = EXCLUDED.name, updated_at = NOW()
		RETURNING id, region, date, name, created_at, updated_at
	`

	var out calendar.Holiday
	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		holiday.Region,
		holiday.Date,
		holiday.Name,
	).Scan(&out.ID, &out.Region, &out.Date, &out.Name, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return calendar.Holiday{}, err
	}
	return out, nil
}

// GetByRegionInRange implements calendar.HolidayRepository.
func (r *holidayRepositoryImpl) GetByRegionInRange(ctx context.Context, region string, from, to time.Time) ([]calendar.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, region, date, name, created_at, updated_at
		FROM holidays
		WHERE region = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, region, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHolidays(rows)
}

// ListByRegionAndYear implements calendar.HolidayRepository.
func (r *holidayRepositoryImpl) ListByRegionAndYear(ctx context.Context, region string, year int) ([]calendar.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, region, date, name, created_at, updated_at
		FROM holidays
		WHERE region = $1 AND EXTRACT(YEAR FROM date) = $2
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, region, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHolidays(rows)
}

func scanHolidays(rows pgx.Rows) ([]calendar.Holiday, error) {
	holidays := make([]calendar.Holiday, 0)
	for rows.Next() {
		var h calendar.Holiday
		if err := rows.Scan(&h.ID, &h.Region, &h.Date, &h.Name, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}
