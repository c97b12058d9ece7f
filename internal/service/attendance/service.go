package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gestionahr/gestion-backend-go/internal/domain/attendance"
	"github.com/gestionahr/gestion-backend-go/internal/domain/employee"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
}

func NewAttendanceService(attendanceRepo attendance.Repository, employeeRepo employee.Repository) attendance.Service {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// ClockIn implements attendance.Service.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, employeeID string, req attendance.ClockRequest) (attendance.FichajeResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return attendance.FichajeResponse{}, err
	}

	// An open fichaje means the previous shift was never closed.
	_, err := s.attendanceRepo.GetOpen(ctx, employeeID)
	if err == nil {
		return attendance.FichajeResponse{}, attendance.ErrAlreadyClockedIn
	}
	if !errors.Is(err, attendance.ErrNotClockedIn) {
		return attendance.FichajeResponse{}, err
	}

	source := attendance.SourceWeb
	if req.Source != "" {
		source = attendance.Source(req.Source)
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Fichaje{
		EmployeeID: employeeID,
		ClockIn:    time.Now(),
		Source:     source,
	})
	if err != nil {
		return attendance.FichajeResponse{}, fmt.Errorf("failed to create fichaje: %w", err)
	}
	return attendance.ToResponse(created), nil
}

// ClockOut implements attendance.Service.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, employeeID string) (attendance.FichajeResponse, error) {
	open, err := s.attendanceRepo.GetOpen(ctx, employeeID)
	if err != nil {
		return attendance.FichajeResponse{}, err
	}

	now := time.Now()
	if err := s.attendanceRepo.Close(ctx, open.ID, now); err != nil {
		return attendance.FichajeResponse{}, err
	}
	open.ClockOut = &now
	return attendance.ToResponse(open), nil
}

// ListMine implements attendance.Service.
func (s *AttendanceServiceImpl) ListMine(ctx context.Context, employeeID string, from, to string) ([]attendance.FichajeResponse, error) {
	fromTime, toTime, err := parseRange(from, to)
	if err != nil {
		return nil, err
	}

	fichajes, err := s.attendanceRepo.ListByEmployeeInRange(ctx, employeeID, fromTime, toTime)
	if err != nil {
		return nil, err
	}
	return toResponses(fichajes), nil
}

// ListByEmployeeCode implements attendance.Service.
func (s *AttendanceServiceImpl) ListByEmployeeCode(ctx context.Context, employeeCode string, from, to string) ([]attendance.FichajeResponse, error) {
	emp, err := s.employeeRepo.GetByCode(ctx, employeeCode)
	if err != nil {
		return nil, err
	}
	return s.ListMine(ctx, emp.ID, from, to)
}

// parseRange defaults to the current month when no bounds are given. The
// upper bound is exclusive.
func parseRange(from, to string) (time.Time, time.Time, error) {
	now := time.Now()
	fromTime := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	toTime := fromTime.AddDate(0, 1, 0)

	if from != "" {
		parsed, err := time.Parse(time.DateOnly, from)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid from date: %w", err)
		}
		fromTime = parsed
	}
	if to != "" {
		parsed, err := time.Parse(time.DateOnly, to)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid to date: %w", err)
		}
		toTime = parsed.AddDate(0, 0, 1)
	}
	if toTime.Before(fromTime) {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid range: to before from")
	}
	return fromTime, toTime, nil
}

func toResponses(fichajes []attendance.Fichaje) []attendance.FichajeResponse {
	responses := make([]attendance.FichajeResponse, 0, len(fichajes))
	for _, f := range fichajes {
		responses = append(responses, attendance.ToResponse(f))
	}
	return responses
}
