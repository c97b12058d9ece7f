package attendance

import "time"

// Fichaje is one clock-in/clock-out record. ClockOut is nil while the
// record is still open.
type Fichaje struct {
	ID         string
	EmployeeID string
	ClockIn    time.Time
	ClockOut   *time.Time
	Source     Source
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined for responses
	EmployeeCode *string
}

type Source string

const (
	SourceWeb    Source = "web"
	SourceMobile Source = "mobile"
	SourceManual Source = "manual"
)

// WorkedMinutes returns the minutes between clock-in and clock-out,
// or 0 while the record is open.
func (f Fichaje) WorkedMinutes() int {
	if f.ClockOut == nil {
		return 0
	}
	return int(f.ClockOut.Sub(f.ClockIn).Minutes())
}
