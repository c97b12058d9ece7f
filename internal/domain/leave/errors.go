package leave

import "errors"

var (
	ErrAbsenceNotFound          = errors.New("Absence request not found")
	ErrAbsenceAlreadyProcessed  = errors.New("Absence request already processed")
	ErrAbsenceNotCancellable    = errors.New("Absence request cannot be cancelled")
	ErrEntitlementNotConfigured = errors.New("No entitlement rule configured for group and year")
)
