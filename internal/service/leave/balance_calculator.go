package leave

import (
	"log/slog"
	"time"

	"github.com/gestionahr/gestion-backend-go/internal/domain/employee"
	"github.com/gestionahr/gestion-backend-go/internal/domain/leave"
	"github.com/shopspring/decimal"
)

// BalanceSnapshot is the read snapshot a balance is computed from. It is
// assembled once per request; the calculator itself never touches storage,
// so recomputing from an identical snapshot yields an identical balance.
type BalanceSnapshot struct {
	Employee      employee.Employee
	Rule          leave.EntitlementRule
	CarryOverDays int
	// Absences holds approved requests whose range intersects the year.
	// Requests of types that do not consume balance are ignored.
	Absences []leave.AbsenceRequest
}

type BalanceCalculator struct {
	logger *slog.Logger
}

func NewBalanceCalculator(logger *slog.Logger) *BalanceCalculator {
	if logger == nil {
		logger = slog.Default()
	}
	return &BalanceCalculator{logger: logger}
}

// Calculate derives the leave balance for one employee and one calendar year.
//
// Entitlement is prorated linearly by the fraction of the year the employee
// was employed and rounded half-up to whole days. Consumption counts every
// calendar day of an approved request clipped to the year, endpoints
// inclusive. Overlapping approved requests are summed as-is, without
// deduplication; that mirrors how approvals are recorded upstream and is a
// known limitation rather than something to silently correct here.
// Remaining values are not clamped and go negative on an over-draw.
func (c *BalanceCalculator) Calculate(snap BalanceSnapshot, year int) leave.Balance {
	vacationRule := snap.Rule.VacationDays
	personalRule := snap.Rule.PersonalDays

	factor := prorationFactor(snap.Employee, year)
	vacationEntitled := prorate(vacationRule, factor)
	personalEntitled := prorate(personalRule, factor)

	var vacationConsumed, personalConsumed int
	for _, req := range snap.Absences {
		if !req.LeaveType.ConsumesBalance() {
			continue
		}
		if req.Status != leave.AbsenceStatusApproved {
			continue
		}
		days := c.consumedDays(req, year)
		switch req.LeaveType {
		case leave.LeaveTypeVacation:
			vacationConsumed += days
		case leave.LeaveTypePersonalDay:
			personalConsumed += days
		}
	}

	return leave.Balance{
		EmployeeCode: snap.Employee.EmployeeCode,
		Year:         year,

		VacationEntitled:  vacationEntitled,
		VacationCarryOver: snap.CarryOverDays,
		VacationConsumed:  vacationConsumed,
		VacationRemaining: vacationEntitled + snap.CarryOverDays - vacationConsumed,

		PersonalDaysEntitled:  personalEntitled,
		PersonalDaysConsumed:  personalConsumed,
		PersonalDaysRemaining: personalEntitled - personalConsumed,
	}
}

// consumedDays counts the calendar days of one approved request that fall
// inside the year. A malformed range (end before start) is a historical data
// anomaly: it contributes nothing but must not abort the whole calculation.
func (c *BalanceCalculator) consumedDays(req leave.AbsenceRequest, year int) int {
	start := dateOnly(req.StartDate)
	end := dateOnly(req.EndDate)

	if end.Before(start) {
		c.logger.Warn("absence request has end date before start date, skipping",
			"request_id", req.ID,
			"employee_id", req.EmployeeID,
			"start_date", req.StartDate.Format(time.DateOnly),
			"end_date", req.EndDate.Format(time.DateOnly),
		)
		return 0
	}

	yearStart := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC)

	if start.Before(yearStart) {
		start = yearStart
	}
	if end.After(yearEnd) {
		end = yearEnd
	}
	if end.Before(start) {
		return 0
	}
	return inclusiveDays(start, end)
}

// prorationFactor returns the employed fraction of the year as a decimal.
// The employment window is clipped to the year on both sides, which covers
// all four hire/termination cases with one expression.
func prorationFactor(emp employee.Employee, year int) decimal.Decimal {
	if !emp.EmployedDuring(year) {
		return decimal.Zero
	}

	yearStart := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC)

	from := dateOnly(emp.HireDate)
	if from.Before(yearStart) {
		from = yearStart
	}
	to := yearEnd
	if emp.TerminationDate != nil {
		if term := dateOnly(*emp.TerminationDate); term.Before(to) {
			to = term
		}
	}

	employed := inclusiveDays(from, to)
	total := daysInYear(year)
	return decimal.NewFromInt(int64(employed)).Div(decimal.NewFromInt(int64(total)))
}

// prorate applies the factor to an annual allowance and rounds half-up to a
// whole day; fractional entitlements are never retained.
func prorate(annualDays int, factor decimal.Decimal) int {
	return int(decimal.NewFromInt(int64(annualDays)).Mul(factor).Round(0).IntPart())
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// inclusiveDays counts calendar days between two midnight-UTC dates,
// both endpoints included.
func inclusiveDays(from, to time.Time) int {
	return int(to.Sub(from)/(24*time.Hour)) + 1
}

func daysInYear(year int) int {
	return time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC).YearDay()
}
