// utils/dates.go
package utils

import "time"

func BeginningOfMonth(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}

// Today returns the current calendar date in the "YYYY-MM-DD" form used
// by appointment records.
func Today() string {
	return time.Now().Format("2006-01-02")
}
