package employee

import (
	"testing"
	"time"
)

func TestEmployedDuring(t *testing.T) {
	date := func(s string) time.Time {
		d, err := time.Parse(time.DateOnly, s)
		if err != nil {
			t.Fatalf("bad date %q: %v", s, err)
		}
		return d
	}
	ptr := func(d time.Time) *time.Time { return &d }

	tests := []struct {
		name string
		emp  Employee
		year int
		want bool
	}{
		{
			name: "active employee",
			emp:  Employee{HireDate: date("2020-03-01")},
			year: 2024,
			want: true,
		},
		{
			name: "hired after the year",
			emp:  Employee{HireDate: date("2025-01-01")},
			year: 2024,
			want: false,
		},
		{
			name: "hired on the last day of the year",
			emp:  Employee{HireDate: date("2024-12-31")},
			year: 2024,
			want: true,
		},
		{
			name: "terminated before the year",
			emp:  Employee{HireDate: date("2020-03-01"), TerminationDate: ptr(date("2023-12-31"))},
			year: 2024,
			want: false,
		},
		{
			name: "terminated on the first day of the year",
			emp:  Employee{HireDate: date("2020-03-01"), TerminationDate: ptr(date("2024-01-01"))},
			year: 2024,
			want: true,
		},
		{
			name: "hired and terminated within the year",
			emp:  Employee{HireDate: date("2024-04-01"), TerminationDate: ptr(date("2024-07-01"))},
			year: 2024,
			want: true,
		},
		{
			name: "clock time on the hire date is ignored",
			emp:  Employee{HireDate: date("2024-12-31").Add(12 * time.Hour)},
			year: 2024,
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.emp.EmployedDuring(tt.year); got != tt.want {
				t.Errorf("EmployedDuring(%d) = %v, want %v", tt.year, got, tt.want)
			}
		})
	}
}
