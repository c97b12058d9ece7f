package employee

import "time"

type Employee struct {
	ID               string
	EmployeeCode     string
	FullName         string
	Email            string
	PasswordHash     string
	HireDate         time.Time
	TerminationDate  *time.Time
	EntitlementGroup string
	Region           string
	IsAdmin          bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}

// EmployedDuring reports whether the employee was employed at any point of
// the given calendar year. Only the date parts of HireDate and
// TerminationDate matter; any clock time is ignored.
func (e Employee) EmployedDuring(year int) bool {
	yearEnd := time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC)
	if truncateToDay(e.HireDate).After(yearEnd) {
		return false
	}
	if e.TerminationDate != nil {
		yearStart := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
		if truncateToDay(*e.TerminationDate).Before(yearStart) {
			return false
		}
	}
	return true
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
