package leave

import (
	"time"

	"github.com/gestionahr/gestion-backend-go/internal/pkg/validator"
)

type CreateAbsenceRequest struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r *CreateAbsenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.LeaveType, []string{
		string(LeaveTypeVacation), string(LeaveTypePersonalDay), string(LeaveTypeOther),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of: vacation, personal_day, other",
		})
	}

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid YYYY-MM-DD date",
		})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid YYYY-MM-DD date",
		})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectAbsenceRequest struct {
	Reason string `json:"reason"`
}

func (r *RejectAbsenceRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CancelAbsenceRequest struct {
	Reason string `json:"reason"`
}

type UpsertEntitlementRuleRequest struct {
	Group        string `json:"entitlement_group"`
	Year         int    `json:"year"`
	VacationDays int    `json:"vacation_days"`
	PersonalDays int    `json:"personal_days"`
}

func (r *UpsertEntitlementRuleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Group) {
		errs = append(errs, validator.ValidationError{
			Field:   "entitlement_group",
			Message: "entitlement_group is required",
		})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a four-digit year",
		})
	}
	if r.VacationDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "vacation_days",
			Message: "vacation_days must not be negative",
		})
	}
	if r.PersonalDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "personal_days",
			Message: "personal_days must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpsertCarryOverRequest struct {
	EmployeeCode string `json:"employee_code"`
	Year         int    `json:"year"`
	Days         int    `json:"days"`
}

func (r *UpsertCarryOverRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must match EMP-NNNN",
		})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a four-digit year",
		})
	}
	if r.Days < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "days must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AbsenceResponse struct {
	ID                 string  `json:"id"`
	EmployeeCode       *string `json:"employee_code,omitempty"`
	EmployeeName       *string `json:"employee_name,omitempty"`
	LeaveType          string  `json:"leave_type"`
	StartDate          string  `json:"start_date"`
	EndDate            string  `json:"end_date"`
	Reason             string  `json:"reason"`
	Status             string  `json:"status"`
	WorkingDays        *int    `json:"working_days,omitempty"`
	RejectionReason    *string `json:"rejection_reason,omitempty"`
	CancellationReason *string `json:"cancellation_reason,omitempty"`
	SubmittedAt        string  `json:"submitted_at"`
}

func ToAbsenceResponse(a AbsenceRequest) AbsenceResponse {
	return AbsenceResponse{
		ID:                 a.ID,
		EmployeeCode:       a.EmployeeCode,
		EmployeeName:       a.EmployeeName,
		LeaveType:          string(a.LeaveType),
		StartDate:          a.StartDate.Format(time.DateOnly),
		EndDate:            a.EndDate.Format(time.DateOnly),
		Reason:             a.Reason,
		Status:             string(a.Status),
		RejectionReason:    a.RejectionReason,
		CancellationReason: a.CancellationReason,
		SubmittedAt:        a.SubmittedAt.Format(time.RFC3339),
	}
}

// BalanceResponse is returned by the balance query endpoints.
type BalanceResponse struct {
	EmployeeCode string `json:"employee_code"`
	Year         int    `json:"year"`

	VacationEntitled  int `json:"vacation_entitled"`
	VacationCarryOver int `json:"vacation_carry_over"`
	VacationConsumed  int `json:"vacation_consumed"`
	VacationRemaining int `json:"vacation_remaining"`

	PersonalDaysEntitled  int `json:"personal_days_entitled"`
	PersonalDaysConsumed  int `json:"personal_days_consumed"`
	PersonalDaysRemaining int `json:"personal_days_remaining"`
}

func ToBalanceResponse(b Balance) BalanceResponse {
	return BalanceResponse{
		EmployeeCode:          b.EmployeeCode,
		Year:                  b.Year,
		VacationEntitled:      b.VacationEntitled,
		VacationCarryOver:     b.VacationCarryOver,
		VacationConsumed:      b.VacationConsumed,
		VacationRemaining:     b.VacationRemaining,
		PersonalDaysEntitled:  b.PersonalDaysEntitled,
		PersonalDaysConsumed:  b.PersonalDaysConsumed,
		PersonalDaysRemaining: b.PersonalDaysRemaining,
	}
}
