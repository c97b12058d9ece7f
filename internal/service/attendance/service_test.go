package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/gestionahr/gestion-backend-go/internal/domain/attendance"
	"github.com/gestionahr/gestion-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	fichajes []attendance.Fichaje
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, fichaje attendance.Fichaje) (attendance.Fichaje, error) {
	fichaje.ID = "fichaje-1"
	f.fichajes = append(f.fichajes, fichaje)
	return fichaje, nil
}

func (f *fakeAttendanceRepo) GetOpen(ctx context.Context, employeeID string) (attendance.Fichaje, error) {
	for _, fichaje := range f.fichajes {
		if fichaje.EmployeeID == employeeID && fichaje.ClockOut == nil {
			return fichaje, nil
		}
	}
	return attendance.Fichaje{}, attendance.ErrNotClockedIn
}

func (f *fakeAttendanceRepo) Close(ctx context.Context, id string, clockOut time.Time) error {
	for i, fichaje := range f.fichajes {
		if fichaje.ID == id && fichaje.ClockOut == nil {
			f.fichajes[i].ClockOut = &clockOut
			return nil
		}
	}
	return attendance.ErrFichajeNotFound
}

func (f *fakeAttendanceRepo) ListByEmployeeInRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Fichaje, error) {
	return f.fichajes, nil
}

type fakeEmployeeRepo struct{}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if id != "emp-1" {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return employee.Employee{ID: "emp-1", EmployeeCode: "EMP-0001"}, nil
}

func (f *fakeEmployeeRepo) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	if code != "EMP-0001" {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return employee.Employee{ID: "emp-1", EmployeeCode: "EMP-0001"}, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, includeTerminated bool) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Terminate(ctx context.Context, id string, terminationDate time.Time) error {
	return nil
}

func TestClockIn_ThenDoubleClockInRejected(t *testing.T) {
	t.Parallel()
	svc := NewAttendanceService(&fakeAttendanceRepo{}, &fakeEmployeeRepo{})

	resp, err := svc.ClockIn(context.Background(), "emp-1", attendance.ClockRequest{})
	require.NoError(t, err)
	assert.Equal(t, string(attendance.SourceWeb), resp.Source)
	assert.Nil(t, resp.ClockOut)

	_, err = svc.ClockIn(context.Background(), "emp-1", attendance.ClockRequest{})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestClockOut_WithoutOpenFichaje(t *testing.T) {
	t.Parallel()
	svc := NewAttendanceService(&fakeAttendanceRepo{}, &fakeEmployeeRepo{})

	_, err := svc.ClockOut(context.Background(), "emp-1")
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestClockInOut_RoundTrip(t *testing.T) {
	t.Parallel()
	svc := NewAttendanceService(&fakeAttendanceRepo{}, &fakeEmployeeRepo{})

	_, err := svc.ClockIn(context.Background(), "emp-1", attendance.ClockRequest{Source: "mobile"})
	require.NoError(t, err)

	resp, err := svc.ClockOut(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.NotNil(t, resp.ClockOut)

	// The shift is closed, a new one can start.
	_, err = svc.ClockIn(context.Background(), "emp-1", attendance.ClockRequest{})
	assert.NoError(t, err)
}

func TestClockIn_UnknownEmployee(t *testing.T) {
	t.Parallel()
	svc := NewAttendanceService(&fakeAttendanceRepo{}, &fakeEmployeeRepo{})

	_, err := svc.ClockIn(context.Background(), "emp-404", attendance.ClockRequest{})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
