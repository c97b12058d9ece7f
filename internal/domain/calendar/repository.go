package calendar

import (
	"context"
	"time"
)

// HolidayRepository - interface for the holidays table
type HolidayRepository interface {
	Upsert(ctx context.Context, holiday Holiday) (Holiday, error)
	GetByRegionInRange(ctx context.Context, region string, from, to time.Time) ([]Holiday, error)
	ListByRegionAndYear(ctx context.Context, region string, year int) ([]Holiday, error)
}
