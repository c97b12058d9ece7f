package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/gestionahr/gestion-backend-go/internal/domain/calendar"
)

type CalendarServiceImpl struct {
	holidayRepo calendar.HolidayRepository
}

func NewCalendarService(holidayRepo calendar.HolidayRepository) calendar.Service {
	return &CalendarServiceImpl{holidayRepo: holidayRepo}
}

// UpsertHoliday implements calendar.Service.
func (s *CalendarServiceImpl) UpsertHoliday(ctx context.Context, req calendar.UpsertHolidayRequest) (calendar.HolidayResponse, error) {
	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		return calendar.HolidayResponse{}, fmt.Errorf("invalid date: %w", err)
	}

	holiday, err := s.holidayRepo.Upsert(ctx, calendar.Holiday{
		Region: req.Region,
		Date:   date,
		Name:   req.Name,
	})
	if err != nil {
		return calendar.HolidayResponse{}, err
	}
	return calendar.ToResponse(holiday), nil
}

// ListHolidays implements calendar.Service.
func (s *CalendarServiceImpl) ListHolidays(ctx context.Context, region string, year int) ([]calendar.HolidayResponse, error) {
	holidays, err := s.holidayRepo.ListByRegionAndYear(ctx, region, year)
	if err != nil {
		return nil, err
	}
	responses := make([]calendar.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, calendar.ToResponse(h))
	}
	return responses, nil
}

// WorkingDays implements calendar.Service. Holidays falling on a weekend are
// not counted twice.
func (s *CalendarServiceImpl) WorkingDays(ctx context.Context, region string, from, to time.Time) (int, error) {
	if to.Before(from) {
		return 0, fmt.Errorf("invalid range: %s after %s", from.Format(time.DateOnly), to.Format(time.DateOnly))
	}

	holidays, err := s.holidayRepo.GetByRegionInRange(ctx, region, from, to)
	if err != nil {
		return 0, err
	}
	holidaySet := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		holidaySet[h.Date.Format(time.DateOnly)] = struct{}{}
	}

	count := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if calendar.IsWeekend(d) {
			continue
		}
		if _, ok := holidaySet[d.Format(time.DateOnly)]; ok {
			continue
		}
		count++
	}
	return count, nil
}
