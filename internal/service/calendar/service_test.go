package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/gestionahr/gestion-backend-go/internal/domain/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHolidayRepo struct {
	holidays []calendar.Holiday
}

func (f *fakeHolidayRepo) Upsert(ctx context.Context, holiday calendar.Holiday) (calendar.Holiday, error) {
	f.holidays = append(f.holidays, holiday)
	return holiday, nil
}

func (f *fakeHolidayRepo) GetByRegionInRange(ctx context.Context, region string, from, to time.Time) ([]calendar.Holiday, error) {
	out := make([]calendar.Holiday, 0)
	for _, h := range f.holidays {
		if h.Region == region && !h.Date.Before(from) && !h.Date.After(to) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHolidayRepo) ListByRegionAndYear(ctx context.Context, region string, year int) ([]calendar.Holiday, error) {
	return f.holidays, nil
}

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestWorkingDays_SkipsWeekends(t *testing.T) {
	t.Parallel()
	svc := NewCalendarService(&fakeHolidayRepo{})

	// 2024-08-05 is a Monday; Mon-Sun covers one full week.
	days, err := svc.WorkingDays(context.Background(), "madrid", date("2024-08-05"), date("2024-08-11"))
	require.NoError(t, err)
	assert.Equal(t, 5, days)
}

func TestWorkingDays_SkipsHolidays(t *testing.T) {
	t.Parallel()
	repo := &fakeHolidayRepo{holidays: []calendar.Holiday{
		{Region: "madrid", Date: date("2024-08-15"), Name: "Asuncion de la Virgen"}, // Thursday
	}}
	svc := NewCalendarService(repo)

	days, err := svc.WorkingDays(context.Background(), "madrid", date("2024-08-12"), date("2024-08-18"))
	require.NoError(t, err)
	assert.Equal(t, 4, days)

	// Same week in a region without the holiday.
	days, err = svc.WorkingDays(context.Background(), "bilbao", date("2024-08-12"), date("2024-08-18"))
	require.NoError(t, err)
	assert.Equal(t, 5, days)
}

func TestWorkingDays_HolidayOnWeekendNotDoubleCounted(t *testing.T) {
	t.Parallel()
	repo := &fakeHolidayRepo{holidays: []calendar.Holiday{
		{Region: "madrid", Date: date("2024-08-10"), Name: "Fiesta local"}, // Saturday
	}}
	svc := NewCalendarService(repo)

	days, err := svc.WorkingDays(context.Background(), "madrid", date("2024-08-05"), date("2024-08-11"))
	require.NoError(t, err)
	assert.Equal(t, 5, days)
}

func TestWorkingDays_InvalidRange(t *testing.T) {
	t.Parallel()
	svc := NewCalendarService(&fakeHolidayRepo{})

	_, err := svc.WorkingDays(context.Background(), "madrid", date("2024-08-11"), date("2024-08-05"))
	assert.Error(t, err)
}
