package leave

import "time"

// LeaveType classifies an absence request. Only vacation and personal days
// ("asuntos propios") consume balance; everything else falls under other.
type LeaveType string

const (
	LeaveTypeVacation    LeaveType = "vacation"
	LeaveTypePersonalDay LeaveType = "personal_day"
	LeaveTypeOther       LeaveType = "other"
)

func (t LeaveType) ConsumesBalance() bool {
	return t == LeaveTypeVacation || t == LeaveTypePersonalDay
}

type AbsenceStatus string

const (
	AbsenceStatusPending   AbsenceStatus = "pending"
	AbsenceStatusApproved  AbsenceStatus = "approved"
	AbsenceStatusRejected  AbsenceStatus = "rejected"
	AbsenceStatusCancelled AbsenceStatus = "cancelled"
)

// AbsenceRequest entity. Start and end dates are inclusive calendar days.
// Approved requests are never deleted, only soft-cancelled.
type AbsenceRequest struct {
	ID         string
	EmployeeID string
	LeaveType  LeaveType

	StartDate time.Time
	EndDate   time.Time

	Reason string
	Status AbsenceStatus

	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string

	CancelledBy        *string
	CancelledAt        *time.Time
	CancellationReason *string

	SubmittedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined for responses
	EmployeeCode *string
	EmployeeName *string
}

// EntitlementRule maps an entitlement group to its annual allowance for one
// calendar year. Rules are master data maintained by administrators.
type EntitlementRule struct {
	ID           string
	Group        string
	Year         int
	VacationDays int
	PersonalDays int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CarryOver is an administrative override crediting unused vacation days
// from the prior year. Absence of a row means zero.
type CarryOver struct {
	ID         string
	EmployeeID string
	Year       int
	Days       int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Balance is always derived, never persisted. Remaining values may be
// negative; callers decide how to surface an over-draw.
type Balance struct {
	EmployeeCode string
	Year         int

	VacationEntitled  int
	VacationCarryOver int
	VacationConsumed  int
	VacationRemaining int

	PersonalDaysEntitled  int
	PersonalDaysConsumed  int
	PersonalDaysRemaining int
}
