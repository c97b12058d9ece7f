package calendar

import (
	"context"
	"time"
)

type Service interface {
	UpsertHoliday(ctx context.Context, req UpsertHolidayRequest) (HolidayResponse, error)
	ListHolidays(ctx context.Context, region string, year int) ([]HolidayResponse, error)
	// WorkingDays counts the days in the inclusive [from,to] range that are
	// neither weekends nor public holidays in the region.
	WorkingDays(ctx context.Context, region string, from, to time.Time) (int, error)
}
