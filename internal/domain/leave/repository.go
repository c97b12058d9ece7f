package leave

import (
	"context"
	"time"
)

// AbsenceRepository - interface for the absence_requests table
type AbsenceRepository interface {
	Create(ctx context.Context, req AbsenceRequest) (AbsenceRequest, error)
	GetByID(ctx context.Context, id string) (AbsenceRequest, error)
	// GetByIDForUpdate locks the row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id string) (AbsenceRequest, error)
	GetByEmployeeID(ctx context.Context, employeeID string, status string) ([]AbsenceRequest, error)
	ListByStatus(ctx context.Context, status AbsenceStatus) ([]AbsenceRequest, error)
	// GetApprovedInRange returns approved requests whose inclusive [start,end]
	// window intersects [from,to], regardless of leave type.
	GetApprovedInRange(ctx context.Context, employeeID string, from, to time.Time) ([]AbsenceRequest, error)
	UpdateStatus(ctx context.Context, req AbsenceRequest) error
}

// EntitlementRuleRepository - interface for the entitlement_rules table
type EntitlementRuleRepository interface {
	Upsert(ctx context.Context, rule EntitlementRule) (EntitlementRule, error)
	GetByGroupAndYear(ctx context.Context, group string, year int) (EntitlementRule, error)
	ListByYear(ctx context.Context, year int) ([]EntitlementRule, error)
}

// CarryOverRepository - interface for the carry_overs table
type CarryOverRepository interface {
	Upsert(ctx context.Context, co CarryOver) (CarryOver, error)
	// GetDays returns 0 without error when no record exists.
	GetDays(ctx context.Context, employeeID string, year int) (int, error)
}
