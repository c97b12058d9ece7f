package leave

import "context"

type LeaveService interface {
	// Balance
	GetBalanceByCode(ctx context.Context, employeeCode string, year int) (Balance, error)
	GetBalanceByEmployeeID(ctx context.Context, employeeID string, year int) (Balance, error)

	// Requests
	SubmitAbsence(ctx context.Context, employeeID string, req CreateAbsenceRequest) (AbsenceResponse, error)
	GetAbsence(ctx context.Context, requestID, requesterID string, requesterIsAdmin bool) (AbsenceResponse, error)
	ListMyAbsences(ctx context.Context, employeeID string, status string) ([]AbsenceResponse, error)
	ListPendingAbsences(ctx context.Context) ([]AbsenceResponse, error)
	ApproveAbsence(ctx context.Context, requestID, approverID string) error
	RejectAbsence(ctx context.Context, requestID, approverID string, req RejectAbsenceRequest) error
	CancelAbsence(ctx context.Context, requestID, requesterID string, requesterIsAdmin bool, req CancelAbsenceRequest) error

	// Master data
	UpsertEntitlementRule(ctx context.Context, req UpsertEntitlementRuleRequest) (EntitlementRule, error)
	ListEntitlementRules(ctx context.Context, year int) ([]EntitlementRule, error)
	UpsertCarryOver(ctx context.Context, req UpsertCarryOverRequest) (CarryOver, error)
	GetCarryOver(ctx context.Context, employeeCode string, year int) (int, error)
}
