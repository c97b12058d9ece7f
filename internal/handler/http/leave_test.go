package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gestionahr/gestion-backend-go/internal/domain/employee"
	"github.com/gestionahr/gestion-backend-go/internal/domain/leave"
	"github.com/gestionahr/gestion-backend-go/internal/handler/http/middleware"
	"github.com/gestionahr/gestion-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLeaveService returns canned answers per employee code.
type stubLeaveService struct {
	balances map[string]leave.Balance
	errs     map[string]error
}

func (s *stubLeaveService) GetBalanceByCode(ctx context.Context, employeeCode string, year int) (leave.Balance, error) {
	if err, ok := s.errs[employeeCode]; ok {
		return leave.Balance{}, err
	}
	balance, ok := s.balances[employeeCode]
	if !ok {
		return leave.Balance{}, employee.ErrEmployeeNotFound
	}
	balance.Year = year
	return balance, nil
}

func (s *stubLeaveService) GetBalanceByEmployeeID(ctx context.Context, employeeID string, year int) (leave.Balance, error) {
	return s.GetBalanceByCode(ctx, employeeID, year)
}

func (s *stubLeaveService) SubmitAbsence(ctx context.Context, employeeID string, req leave.CreateAbsenceRequest) (leave.AbsenceResponse, error) {
	return leave.AbsenceResponse{}, nil
}

func (s *stubLeaveService) GetAbsence(ctx context.Context, requestID, requesterID string, requesterIsAdmin bool) (leave.AbsenceResponse, error) {
	return leave.AbsenceResponse{}, leave.ErrAbsenceNotFound
}

func (s *stubLeaveService) ListMyAbsences(ctx context.Context, employeeID string, status string) ([]leave.AbsenceResponse, error) {
	return nil, nil
}

func (s *stubLeaveService) ListPendingAbsences(ctx context.Context) ([]leave.AbsenceResponse, error) {
	return nil, nil
}

func (s *stubLeaveService) ApproveAbsence(ctx context.Context, requestID, approverID string) error {
	return nil
}

func (s *stubLeaveService) RejectAbsence(ctx context.Context, requestID, approverID string, req leave.RejectAbsenceRequest) error {
	return nil
}

func (s *stubLeaveService) CancelAbsence(ctx context.Context, requestID, requesterID string, requesterIsAdmin bool, req leave.CancelAbsenceRequest) error {
	return nil
}

func (s *stubLeaveService) UpsertEntitlementRule(ctx context.Context, req leave.UpsertEntitlementRuleRequest) (leave.EntitlementRule, error) {
	return leave.EntitlementRule{}, nil
}

func (s *stubLeaveService) ListEntitlementRules(ctx context.Context, year int) ([]leave.EntitlementRule, error) {
	return nil, nil
}

func (s *stubLeaveService) UpsertCarryOver(ctx context.Context, req leave.UpsertCarryOverRequest) (leave.CarryOver, error) {
	return leave.CarryOver{}, nil
}

func (s *stubLeaveService) GetCarryOver(ctx context.Context, employeeCode string, year int) (int, error) {
	return 0, nil
}

func balanceRequest(t *testing.T, code, year string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees/"+code+"/leave/balance?year="+year, nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("code", code)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, middleware.EmployeeIDKey, "admin-1")
	ctx = context.WithValue(ctx, middleware.IsAdminKey, true)
	return req.WithContext(ctx)
}

func TestGetEmployeeBalance_Success(t *testing.T) {
	t.Parallel()
	handler := NewLeaveHandler(&stubLeaveService{
		balances: map[string]leave.Balance{
			"EMP-0001": {
				EmployeeCode:          "EMP-0001",
				VacationEntitled:      22,
				VacationCarryOver:     2,
				VacationConsumed:      14,
				VacationRemaining:     10,
				PersonalDaysEntitled:  3,
				PersonalDaysRemaining: 3,
			},
		},
	})

	rec := httptest.NewRecorder()
	handler.GetEmployeeBalance(rec, balanceRequest(t, "EMP-0001", "2024"))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool                  `json:"success"`
		Data    leave.BalanceResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 2024, body.Data.Year)
	assert.Equal(t, 22, body.Data.VacationEntitled)
	assert.Equal(t, 10, body.Data.VacationRemaining)
	assert.Equal(t, 3, body.Data.PersonalDaysRemaining)
}

func TestGetEmployeeBalance_UnknownEmployee(t *testing.T) {
	t.Parallel()
	handler := NewLeaveHandler(&stubLeaveService{})

	rec := httptest.NewRecorder()
	handler.GetEmployeeBalance(rec, balanceRequest(t, "EMP-9999", "2024"))

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
}

func TestGetEmployeeBalance_MissingEntitlementRule(t *testing.T) {
	t.Parallel()
	handler := NewLeaveHandler(&stubLeaveService{
		errs: map[string]error{"EMP-0002": leave.ErrEntitlementNotConfigured},
	})

	rec := httptest.NewRecorder()
	handler.GetEmployeeBalance(rec, balanceRequest(t, "EMP-0002", "2024"))

	// Master-data problems must not look like a bad employee code.
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "CONFIGURATION_ERROR", body.Error.Code)
}

func TestGetEmployeeBalance_InvalidYear(t *testing.T) {
	t.Parallel()
	handler := NewLeaveHandler(&stubLeaveService{})

	rec := httptest.NewRecorder()
	handler.GetEmployeeBalance(rec, balanceRequest(t, "EMP-0001", "not-a-year"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
