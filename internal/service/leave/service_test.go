package leave

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/gestionahr/gestion-backend-go/internal/domain/calendar"
	"github.com/gestionahr/gestion-backend-go/internal/domain/employee"
	"github.com/gestionahr/gestion-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory fakes. The repository interfaces are small enough that
// hand-rolled fakes stay readable.

type fakeEmployeeRepo struct {
	byCode map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, emp := range f.byCode {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	emp, ok := f.byCode[code]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, includeTerminated bool) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Terminate(ctx context.Context, id string, terminationDate time.Time) error {
	return nil
}

type fakeRuleRepo struct {
	rules map[string]leave.EntitlementRule // key: group
}

func (f *fakeRuleRepo) Upsert(ctx context.Context, rule leave.EntitlementRule) (leave.EntitlementRule, error) {
	f.rules[rule.Group] = rule
	return rule, nil
}

func (f *fakeRuleRepo) GetByGroupAndYear(ctx context.Context, group string, year int) (leave.EntitlementRule, error) {
	rule, ok := f.rules[group]
	if !ok || rule.Year != year {
		return leave.EntitlementRule{}, leave.ErrEntitlementNotConfigured
	}
	return rule, nil
}

func (f *fakeRuleRepo) ListByYear(ctx context.Context, year int) ([]leave.EntitlementRule, error) {
	return nil, nil
}

type fakeCarryOverRepo struct {
	days map[string]int // key: employeeID
}

func (f *fakeCarryOverRepo) Upsert(ctx context.Context, co leave.CarryOver) (leave.CarryOver, error) {
	f.days[co.EmployeeID] = co.Days
	return co, nil
}

func (f *fakeCarryOverRepo) GetDays(ctx context.Context, employeeID string, year int) (int, error) {
	return f.days[employeeID], nil
}

type fakeAbsenceRepo struct {
	absences []leave.AbsenceRequest
}

func (f *fakeAbsenceRepo) Create(ctx context.Context, req leave.AbsenceRequest) (leave.AbsenceRequest, error) {
	req.ID = "fake-id"
	req.Status = leave.AbsenceStatusPending
	req.SubmittedAt = time.Now()
	f.absences = append(f.absences, req)
	return req, nil
}

func (f *fakeAbsenceRepo) GetByID(ctx context.Context, id string) (leave.AbsenceRequest, error) {
	for _, a := range f.absences {
		if a.ID == id {
			return a, nil
		}
	}
	return leave.AbsenceRequest{}, leave.ErrAbsenceNotFound
}

func (f *fakeAbsenceRepo) GetByIDForUpdate(ctx context.Context, id string) (leave.AbsenceRequest, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeAbsenceRepo) GetByEmployeeID(ctx context.Context, employeeID string, status string) ([]leave.AbsenceRequest, error) {
	return f.absences, nil
}

func (f *fakeAbsenceRepo) ListByStatus(ctx context.Context, status leave.AbsenceStatus) ([]leave.AbsenceRequest, error) {
	return f.absences, nil
}

func (f *fakeAbsenceRepo) GetApprovedInRange(ctx context.Context, employeeID string, from, to time.Time) ([]leave.AbsenceRequest, error) {
	out := make([]leave.AbsenceRequest, 0)
	for _, a := range f.absences {
		if a.EmployeeID != employeeID || a.Status != leave.AbsenceStatusApproved {
			continue
		}
		if a.StartDate.After(to) || a.EndDate.Before(from) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAbsenceRepo) UpdateStatus(ctx context.Context, req leave.AbsenceRequest) error {
	for i, a := range f.absences {
		if a.ID == req.ID {
			f.absences[i] = req
			return nil
		}
	}
	return leave.ErrAbsenceNotFound
}

type fakeCalendarService struct{}

func (f *fakeCalendarService) UpsertHoliday(ctx context.Context, req calendar.UpsertHolidayRequest) (calendar.HolidayResponse, error) {
	return calendar.HolidayResponse{}, nil
}

func (f *fakeCalendarService) ListHolidays(ctx context.Context, region string, year int) ([]calendar.HolidayResponse, error) {
	return nil, nil
}

func (f *fakeCalendarService) WorkingDays(ctx context.Context, region string, from, to time.Time) (int, error) {
	return 0, nil
}

// fakeTransactor counts transactions and runs fn without a database.
type fakeTransactor struct {
	began int
}

func (f *fakeTransactor) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.began++
	return fn(ctx)
}

func newTestService(emps ...employee.Employee) (leave.LeaveService, *fakeAbsenceRepo, *fakeTransactor) {
	employeeRepo := &fakeEmployeeRepo{byCode: make(map[string]employee.Employee)}
	for _, emp := range emps {
		employeeRepo.byCode[emp.EmployeeCode] = emp
	}
	ruleRepo := &fakeRuleRepo{rules: map[string]leave.EntitlementRule{
		"standard": {Group: "standard", Year: 2024, VacationDays: 22, PersonalDays: 3},
	}}
	absenceRepo := &fakeAbsenceRepo{}
	transactor := &fakeTransactor{}
	svc := NewLeaveService(
		transactor,
		absenceRepo,
		ruleRepo,
		&fakeCarryOverRepo{days: map[string]int{}},
		employeeRepo,
		&fakeCalendarService{},
		NewBalanceCalculator(slog.Default()),
	)
	return svc, absenceRepo, transactor
}

func TestGetBalanceByCode_UnknownEmployee(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService()

	_, err := svc.GetBalanceByCode(context.Background(), "EMP-9999", 2024)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetBalanceByCode_MissingEntitlementRule(t *testing.T) {
	t.Parallel()
	emp := employee.Employee{
		ID:               "emp-1",
		EmployeeCode:     "EMP-0001",
		HireDate:         date("2020-01-01"),
		EntitlementGroup: "executive", // no rule configured
	}
	svc, _, _ := newTestService(emp)

	// Missing master data must surface distinctly from an unknown employee.
	_, err := svc.GetBalanceByCode(context.Background(), "EMP-0001", 2024)
	assert.ErrorIs(t, err, leave.ErrEntitlementNotConfigured)
	assert.NotErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetBalanceByCode_EndToEnd(t *testing.T) {
	t.Parallel()
	emp := employee.Employee{
		ID:               "emp-1",
		EmployeeCode:     "EMP-0001",
		HireDate:         date("2023-01-01"),
		EntitlementGroup: "standard",
	}
	svc, absenceRepo, _ := newTestService(emp)
	absenceRepo.absences = []leave.AbsenceRequest{
		{
			ID:         "req-1",
			EmployeeID: "emp-1",
			LeaveType:  leave.LeaveTypeVacation,
			StartDate:  date("2024-08-01"),
			EndDate:    date("2024-08-14"),
			Status:     leave.AbsenceStatusApproved,
		},
	}

	balance, err := svc.GetBalanceByCode(context.Background(), "EMP-0001", 2024)
	require.NoError(t, err)
	assert.Equal(t, 22, balance.VacationEntitled)
	assert.Equal(t, 14, balance.VacationConsumed)
	assert.Equal(t, 8, balance.VacationRemaining)
}

func TestApproveAbsence_AlreadyProcessed(t *testing.T) {
	t.Parallel()
	emp := employee.Employee{
		ID:               "emp-1",
		EmployeeCode:     "EMP-0001",
		HireDate:         date("2023-01-01"),
		EntitlementGroup: "standard",
	}
	svc, _, _ := newTestService(emp)

	created, err := svc.SubmitAbsence(context.Background(), "emp-1", leave.CreateAbsenceRequest{
		LeaveType: "vacation",
		StartDate: "2024-08-01",
		EndDate:   "2024-08-05",
		Reason:    "verano",
	})
	require.NoError(t, err)

	require.NoError(t, svc.ApproveAbsence(context.Background(), created.ID, "admin-1"))
	assert.ErrorIs(t, svc.ApproveAbsence(context.Background(), created.ID, "admin-1"), leave.ErrAbsenceAlreadyProcessed)
}

func TestStatusChangesRunInTransaction(t *testing.T) {
	t.Parallel()
	emp := employee.Employee{
		ID:               "emp-1",
		EmployeeCode:     "EMP-0001",
		HireDate:         date("2023-01-01"),
		EntitlementGroup: "standard",
	}
	svc, _, transactor := newTestService(emp)

	created, err := svc.SubmitAbsence(context.Background(), "emp-1", leave.CreateAbsenceRequest{
		LeaveType: "vacation",
		StartDate: "2024-08-01",
		EndDate:   "2024-08-05",
	})
	require.NoError(t, err)
	require.Equal(t, 0, transactor.began)

	// Each check-then-update must hold the row inside one transaction.
	require.NoError(t, svc.ApproveAbsence(context.Background(), created.ID, "admin-1"))
	assert.Equal(t, 1, transactor.began)

	require.NoError(t, svc.CancelAbsence(context.Background(), created.ID, "emp-1", false, leave.CancelAbsenceRequest{}))
	assert.Equal(t, 2, transactor.began)

	err = svc.RejectAbsence(context.Background(), created.ID, "admin-1", leave.RejectAbsenceRequest{Reason: "tarde"})
	assert.ErrorIs(t, err, leave.ErrAbsenceAlreadyProcessed)
	assert.Equal(t, 3, transactor.began)
}

func TestCancelAbsence_OnlyOwnerOrAdmin(t *testing.T) {
	t.Parallel()
	emp := employee.Employee{
		ID:               "emp-1",
		EmployeeCode:     "EMP-0001",
		HireDate:         date("2023-01-01"),
		EntitlementGroup: "standard",
	}
	svc, _, _ := newTestService(emp)

	created, err := svc.SubmitAbsence(context.Background(), "emp-1", leave.CreateAbsenceRequest{
		LeaveType: "vacation",
		StartDate: "2024-08-01",
		EndDate:   "2024-08-05",
	})
	require.NoError(t, err)

	err = svc.CancelAbsence(context.Background(), created.ID, "emp-2", false, leave.CancelAbsenceRequest{})
	assert.ErrorIs(t, err, leave.ErrAbsenceNotFound)

	err = svc.CancelAbsence(context.Background(), created.ID, "emp-1", false, leave.CancelAbsenceRequest{Reason: "cambio de planes"})
	assert.NoError(t, err)

	// A cancelled request cannot be cancelled again.
	err = svc.CancelAbsence(context.Background(), created.ID, "emp-1", false, leave.CancelAbsenceRequest{})
	assert.ErrorIs(t, err, leave.ErrAbsenceNotCancellable)
}
