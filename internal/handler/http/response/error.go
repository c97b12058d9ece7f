package response

import (
	"errors"
	"net/http"

	"github.com/gestionahr/gestion-backend-go/internal/domain/attendance"
	"github.com/gestionahr/gestion-backend-go/internal/domain/auth"
	"github.com/gestionahr/gestion-backend-go/internal/domain/employee"
	"github.com/gestionahr/gestion-backend-go/internal/domain/leave"
	"github.com/gestionahr/gestion-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrAlreadyTerminated):
		Conflict(w, "Employee already terminated")

	// Leave domain errors
	case errors.Is(err, leave.ErrAbsenceNotFound):
		NotFound(w, "Absence request not found")
	case errors.Is(err, leave.ErrAbsenceAlreadyProcessed):
		Conflict(w, "Absence request already processed")
	case errors.Is(err, leave.ErrAbsenceNotCancellable):
		Conflict(w, "Absence request cannot be cancelled")
	case errors.Is(err, leave.ErrEntitlementNotConfigured):
		ConfigurationError(w, "No entitlement rule configured for the employee's group and year")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "An open fichaje already exists")
	case errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, "No open fichaje to close")
	case errors.Is(err, attendance.ErrFichajeNotFound):
		NotFound(w, "Fichaje not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
