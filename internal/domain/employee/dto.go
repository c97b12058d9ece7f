package employee

import (
	"time"

	"github.com/gestionahr/gestion-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeCode     string `json:"employee_code"`
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	HireDate         string `json:"hire_date"`
	EntitlementGroup string `json:"entitlement_group"`
	Region           string `json:"region"`
	IsAdmin          bool   `json:"is_admin"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "Must match EMP-NNNN"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "Full name is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Invalid email address"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "Password must be at least 8 characters"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "Invalid date, expected YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.EntitlementGroup) {
		errs = append(errs, validator.ValidationError{Field: "entitlement_group", Message: "Entitlement group is required"})
	}
	if validator.IsEmpty(r.Region) {
		errs = append(errs, validator.ValidationError{Field: "region", Message: "Region is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TerminateEmployeeRequest struct {
	TerminationDate string `json:"termination_date"`
}

func (r TerminateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors
	if _, ok := validator.IsValidDate(r.TerminationDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "termination_date", Message: "Invalid date, expected YYYY-MM-DD"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID               string  `json:"id"`
	EmployeeCode     string  `json:"employee_code"`
	FullName         string  `json:"full_name"`
	Email            string  `json:"email"`
	HireDate         string  `json:"hire_date"`
	TerminationDate  *string `json:"termination_date,omitempty"`
	EntitlementGroup string  `json:"entitlement_group"`
	Region           string  `json:"region"`
	IsAdmin          bool    `json:"is_admin"`
}

func ToResponse(emp Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:               emp.ID,
		EmployeeCode:     emp.EmployeeCode,
		FullName:         emp.FullName,
		Email:            emp.Email,
		HireDate:         emp.HireDate.Format(time.DateOnly),
		EntitlementGroup: emp.EntitlementGroup,
		Region:           emp.Region,
		IsAdmin:          emp.IsAdmin,
	}
	if emp.TerminationDate != nil {
		d := emp.TerminationDate.Format(time.DateOnly)
		resp.TerminationDate = &d
	}
	return resp
}
