// Package stats derives reporting figures from the appointment list:
// per-day agendas, a trailing monthly series, and overall totals.
package stats

import (
	"sort"
	"time"

	"salonbook/models"
	"salonbook/utils"
)

// MonthlyStat summarizes one calendar month of appointments. Revenue
// counts completed appointments only.
type MonthlyStat struct {
	Month                 string  `json:"month"` // "2006-01"
	Label                 string  `json:"label"` // "Jan"
	TotalAppointments     int     `json:"totalAppointments"`
	CompletedAppointments int     `json:"completedAppointments"`
	Revenue               float64 `json:"revenue"`
}

// Summary holds the headline figures shown above the charts.
type Summary struct {
	TotalAppointments     int     `json:"totalAppointments"`
	CompletedAppointments int     `json:"completedAppointments"`
	TotalRevenue          float64 `json:"totalRevenue"`
	AverageTicket         float64 `json:"averageTicket"`
}

// ForDate returns the appointments on the given "YYYY-MM-DD" date,
// sorted by time of day. The time strings are zero-padded fixed-width,
// so lexical order is chronological order.
func ForDate(appts []models.Appointment, date string) []models.Appointment {
	out := make([]models.Appointment, 0)
	for _, a := range appts {
		if a.Date == date {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

// Monthly aggregates the trailing window of calendar months ending at
// now, oldest first. Appointments outside the window, or with a date
// that does not parse, are ignored.
func Monthly(appts []models.Appointment, now time.Time, months int) []MonthlyStat {
	if months <= 0 {
		return nil
	}

	first := utils.BeginningOfMonth(now).AddDate(0, -(months - 1), 0)
	out := make([]MonthlyStat, months)
	index := make(map[string]int, months)
	for i := 0; i < months; i++ {
		m := first.AddDate(0, i, 0)
		key := m.Format("2006-01")
		out[i] = MonthlyStat{Month: key, Label: m.Format("Jan")}
		index[key] = i
	}

	for _, a := range appts {
		d, err := time.Parse("2006-01-02", a.Date)
		if err != nil {
			continue
		}
		i, ok := index[d.Format("2006-01")]
		if !ok {
			continue
		}
		out[i].TotalAppointments++
		if a.Status == models.StatusCompleted {
			out[i].CompletedAppointments++
			out[i].Revenue += a.Price
		}
	}
	return out
}

// Reversed returns the series newest first, the order the monthly
// detail list is displayed in.
func Reversed(series []MonthlyStat) []MonthlyStat {
	out := make([]MonthlyStat, len(series))
	for i, s := range series {
		out[len(series)-1-i] = s
	}
	return out
}

// Summarize computes the overall totals across all appointments.
func Summarize(appts []models.Appointment) Summary {
	var s Summary
	s.TotalAppointments = len(appts)
	for _, a := range appts {
		if a.Status == models.StatusCompleted {
			s.CompletedAppointments++
			s.TotalRevenue += a.Price
		}
	}
	if s.CompletedAppointments > 0 {
		s.AverageTicket = s.TotalRevenue / float64(s.CompletedAppointments)
	}
	return s
}
