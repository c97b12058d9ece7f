package calendar

import "time"

// Holiday is one public holiday in a regional calendar.
type Holiday struct {
	ID        string
	Region    string
	Date      time.Time
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsWeekend reports whether the given date falls on Saturday or Sunday.
func IsWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
