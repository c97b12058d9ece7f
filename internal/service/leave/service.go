package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/gestionahr/gestion-backend-go/internal/domain/calendar"
	"github.com/gestionahr/gestion-backend-go/internal/domain/employee"
	"github.com/gestionahr/gestion-backend-go/internal/domain/leave"
	"github.com/gestionahr/gestion-backend-go/internal/pkg/database"
)

type LeaveServiceImpl struct {
	transactor      database.Transactor
	absenceRepo     leave.AbsenceRepository
	ruleRepo        leave.EntitlementRuleRepository
	carryOverRepo   leave.CarryOverRepository
	employeeRepo    employee.Repository
	calendarService calendar.Service
	calculator      *BalanceCalculator
}

func NewLeaveService(
	transactor database.Transactor,
	absenceRepo leave.AbsenceRepository,
	ruleRepo leave.EntitlementRuleRepository,
	carryOverRepo leave.CarryOverRepository,
	employeeRepo employee.Repository,
	calendarService calendar.Service,
	calculator *BalanceCalculator,
) leave.LeaveService {
	return &LeaveServiceImpl{
		transactor:      transactor,
		absenceRepo:     absenceRepo,
		ruleRepo:        ruleRepo,
		carryOverRepo:   carryOverRepo,
		employeeRepo:    employeeRepo,
		calendarService: calendarService,
		calculator:      calculator,
	}
}

// GetBalanceByCode implements leave.LeaveService.
func (s *LeaveServiceImpl) GetBalanceByCode(ctx context.Context, employeeCode string, year int) (leave.Balance, error) {
	emp, err := s.employeeRepo.GetByCode(ctx, employeeCode)
	if err != nil {
		return leave.Balance{}, err
	}
	return s.balanceFor(ctx, emp, year)
}

// GetBalanceByEmployeeID implements leave.LeaveService.
func (s *LeaveServiceImpl) GetBalanceByEmployeeID(ctx context.Context, employeeID string, year int) (leave.Balance, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return leave.Balance{}, err
	}
	return s.balanceFor(ctx, emp, year)
}

// balanceFor assembles the read snapshot and runs the calculator. The reads
// are not wrapped in a transaction: a concurrent approval may land between
// them, and the resulting balance is simply the pre-approval snapshot.
func (s *LeaveServiceImpl) balanceFor(ctx context.Context, emp employee.Employee, year int) (leave.Balance, error) {
	rule, err := s.ruleRepo.GetByGroupAndYear(ctx, emp.EntitlementGroup, year)
	if err != nil {
		return leave.Balance{}, err
	}

	carryOver, err := s.carryOverRepo.GetDays(ctx, emp.ID, year)
	if err != nil {
		return leave.Balance{}, fmt.Errorf("failed to get carry-over: %w", err)
	}

	yearStart := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC)
	absences, err := s.absenceRepo.GetApprovedInRange(ctx, emp.ID, yearStart, yearEnd)
	if err != nil {
		return leave.Balance{}, fmt.Errorf("failed to get approved absences: %w", err)
	}

	snap := BalanceSnapshot{
		Employee:      emp,
		Rule:          rule,
		CarryOverDays: carryOver,
		Absences:      absences,
	}
	return s.calculator.Calculate(snap, year), nil
}

// SubmitAbsence implements leave.LeaveService.
func (s *LeaveServiceImpl) SubmitAbsence(ctx context.Context, employeeID string, req leave.CreateAbsenceRequest) (leave.AbsenceResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return leave.AbsenceResponse{}, err
	}

	startDate, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		return leave.AbsenceResponse{}, fmt.Errorf("invalid start_date: %w", err)
	}
	endDate, err := time.Parse(time.DateOnly, req.EndDate)
	if err != nil {
		return leave.AbsenceResponse{}, fmt.Errorf("invalid end_date: %w", err)
	}

	created, err := s.absenceRepo.Create(ctx, leave.AbsenceRequest{
		EmployeeID: emp.ID,
		LeaveType:  leave.LeaveType(req.LeaveType),
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
	})
	if err != nil {
		return leave.AbsenceResponse{}, fmt.Errorf("failed to create absence request: %w", err)
	}

	resp := leave.ToAbsenceResponse(created)
	// Informational only: every calendar day of the range consumes balance,
	// but the requester sees how many working days the absence covers.
	if workingDays, err := s.calendarService.WorkingDays(ctx, emp.Region, startDate, endDate); err == nil {
		resp.WorkingDays = &workingDays
	}
	return resp, nil
}

// GetAbsence implements leave.LeaveService.
func (s *LeaveServiceImpl) GetAbsence(ctx context.Context, requestID, requesterID string, requesterIsAdmin bool) (leave.AbsenceResponse, error) {
	request, err := s.absenceRepo.GetByID(ctx, requestID)
	if err != nil {
		return leave.AbsenceResponse{}, err
	}
	if !requesterIsAdmin && request.EmployeeID != requesterID {
		return leave.AbsenceResponse{}, leave.ErrAbsenceNotFound
	}
	return leave.ToAbsenceResponse(request), nil
}

// ListMyAbsences implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMyAbsences(ctx context.Context, employeeID string, status string) ([]leave.AbsenceResponse, error) {
	requests, err := s.absenceRepo.GetByEmployeeID(ctx, employeeID, status)
	if err != nil {
		return nil, err
	}
	responses := make([]leave.AbsenceResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, leave.ToAbsenceResponse(req))
	}
	return responses, nil
}

// ListPendingAbsences implements leave.LeaveService.
func (s *LeaveServiceImpl) ListPendingAbsences(ctx context.Context) ([]leave.AbsenceResponse, error) {
	requests, err := s.absenceRepo.ListByStatus(ctx, leave.AbsenceStatusPending)
	if err != nil {
		return nil, err
	}
	responses := make([]leave.AbsenceResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, leave.ToAbsenceResponse(req))
	}
	return responses, nil
}

// ApproveAbsence implements leave.LeaveService. The check-then-update runs in
// a transaction with the row locked, so two concurrent approvals cannot both
// observe a pending request.
func (s *LeaveServiceImpl) ApproveAbsence(ctx context.Context, requestID, approverID string) error {
	return s.transactor.InTransaction(ctx, func(ctx context.Context) error {
		request, err := s.absenceRepo.GetByIDForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if request.Status != leave.AbsenceStatusPending {
			return leave.ErrAbsenceAlreadyProcessed
		}

		now := time.Now()
		request.Status = leave.AbsenceStatusApproved
		request.ApprovedBy = &approverID
		request.ApprovedAt = &now
		return s.absenceRepo.UpdateStatus(ctx, request)
	})
}

// RejectAbsence implements leave.LeaveService.
func (s *LeaveServiceImpl) RejectAbsence(ctx context.Context, requestID, approverID string, req leave.RejectAbsenceRequest) error {
	return s.transactor.InTransaction(ctx, func(ctx context.Context) error {
		request, err := s.absenceRepo.GetByIDForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if request.Status != leave.AbsenceStatusPending {
			return leave.ErrAbsenceAlreadyProcessed
		}

		now := time.Now()
		request.Status = leave.AbsenceStatusRejected
		request.ApprovedBy = &approverID
		request.ApprovedAt = &now
		request.RejectionReason = &req.Reason
		return s.absenceRepo.UpdateStatus(ctx, request)
	})
}

// CancelAbsence implements leave.LeaveService. Approved requests are never
// deleted; cancellation only flips the status and records who did it.
func (s *LeaveServiceImpl) CancelAbsence(ctx context.Context, requestID, requesterID string, requesterIsAdmin bool, req leave.CancelAbsenceRequest) error {
	return s.transactor.InTransaction(ctx, func(ctx context.Context) error {
		request, err := s.absenceRepo.GetByIDForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if !requesterIsAdmin && request.EmployeeID != requesterID {
			return leave.ErrAbsenceNotFound
		}
		if request.Status != leave.AbsenceStatusPending && request.Status != leave.AbsenceStatusApproved {
			return leave.ErrAbsenceNotCancellable
		}

		now := time.Now()
		request.Status = leave.AbsenceStatusCancelled
		request.CancelledBy = &requesterID
		request.CancelledAt = &now
		if req.Reason != "" {
			request.CancellationReason = &req.Reason
		}
		return s.absenceRepo.UpdateStatus(ctx, request)
	})
}

// UpsertEntitlementRule implements leave.LeaveService.
func (s *LeaveServiceImpl) UpsertEntitlementRule(ctx context.Context, req leave.UpsertEntitlementRuleRequest) (leave.EntitlementRule, error) {
	return s.ruleRepo.Upsert(ctx, leave.EntitlementRule{
		Group:        req.Group,
		Year:         req.Year,
		VacationDays: req.VacationDays,
		PersonalDays: req.PersonalDays,
	})
}

// ListEntitlementRules implements leave.LeaveService.
func (s *LeaveServiceImpl) ListEntitlementRules(ctx context.Context, year int) ([]leave.EntitlementRule, error) {
	return s.ruleRepo.ListByYear(ctx, year)
}

// UpsertCarryOver implements leave.LeaveService.
func (s *LeaveServiceImpl) UpsertCarryOver(ctx context.Context, req leave.UpsertCarryOverRequest) (leave.CarryOver, error) {
	emp, err := s.employeeRepo.GetByCode(ctx, req.EmployeeCode)
	if err != nil {
		return leave.CarryOver{}, err
	}
	return s.carryOverRepo.Upsert(ctx, leave.CarryOver{
		EmployeeID: emp.ID,
		Year:       req.Year,
		Days:       req.Days,
	})
}

// GetCarryOver implements leave.LeaveService.
func (s *LeaveServiceImpl) GetCarryOver(ctx context.Context, employeeCode string, year int) (int, error) {
	emp, err := s.employeeRepo.GetByCode(ctx, employeeCode)
	if err != nil {
		return 0, err
	}
	return s.carryOverRepo.GetDays(ctx, emp.ID, year)
}
