package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonbook/models"
	"salonbook/stats"
)

func appt(id, date, tod, status string, price float64) models.Appointment {
	return models.Appointment{
		ID:         id,
		ClientName: "Maria",
		Service:    "Haircut",
		Date:       date,
		Time:       tod,
		Price:      price,
		Status:     status,
	}
}

func TestMonthly_FixedWindow(t *testing.T) {
	appointments := []models.Appointment{
		appt("a1", "2024-01-15", "09:00", models.StatusCompleted, 50),
		appt("a2", "2024-01-20", "10:00", models.StatusScheduled, 30),
		appt("a3", "2024-02-01", "11:00", models.StatusCompleted, 20),
	}

	now := time.Date(2024, time.February, 15, 12, 0, 0, 0, time.UTC)
	monthly := stats.Monthly(appointments, now, 2)
	require.Len(t, monthly, 2)

	jan := monthly[0]
	assert.Equal(t, "2024-01", jan.Month)
	assert.Equal(t, 2, jan.TotalAppointments)
	assert.Equal(t, 1, jan.CompletedAppointments)
	assert.Equal(t, 50.0, jan.Revenue)

	feb := monthly[1]
	assert.Equal(t, "2024-02", feb.Month)
	assert.Equal(t, 1, feb.TotalAppointments)
	assert.Equal(t, 1, feb.CompletedAppointments)
	assert.Equal(t, 20.0, feb.Revenue)
}

func TestMonthly_IgnoresOutOfWindowAndUnparsable(t *testing.T) {
	appointments := []models.Appointment{
		appt("a1", "2023-06-15", "09:00", models.StatusCompleted, 50),
		appt("a2", "not-a-date", "09:00", models.StatusCompleted, 50),
		appt("a3", "2024-02-10", "09:00", models.StatusCompleted, 20),
	}

	now := time.Date(2024, time.February, 15, 12, 0, 0, 0, time.UTC)
	monthly := stats.Monthly(appointments, now, 2)
	require.Len(t, monthly, 2)
	assert.Equal(t, 0, monthly[0].TotalAppointments)
	assert.Equal(t, 1, monthly[1].TotalAppointments)
}

func TestMonthly_EmptyWindow(t *testing.T) {
	assert.Nil(t, stats.Monthly(nil, time.Now(), 0))
}

func TestReversed(t *testing.T) {
	series := []stats.MonthlyStat{{Month: "2024-01"}, {Month: "2024-02"}, {Month: "2024-03"}}
	reversed := stats.Reversed(series)

	assert.Equal(t, "2024-03", reversed[0].Month)
	assert.Equal(t, "2024-01", reversed[2].Month)
	// input untouched
	assert.Equal(t, "2024-01", series[0].Month)
}

func TestForDate_FiltersAndSortsByTime(t *testing.T) {
	appointments := []models.Appointment{
		appt("a1", "2024-01-15", "14:00", models.StatusScheduled, 50),
		appt("a2", "2024-01-16", "08:00", models.StatusScheduled, 50),
		appt("a3", "2024-01-15", "09:30", models.StatusScheduled, 50),
		appt("a4", "2024-01-15", "09:00", models.StatusScheduled, 50),
	}

	day := stats.ForDate(appointments, "2024-01-15")
	require.Len(t, day, 3)
	assert.Equal(t, []string{"a4", "a3", "a1"}, []string{day[0].ID, day[1].ID, day[2].ID})
}

func TestForDate_KeepsInsertionOrderForEqualTimes(t *testing.T) {
	appointments := []models.Appointment{
		appt("a1", "2024-01-15", "09:00", models.StatusScheduled, 50),
		appt("a2", "2024-01-15", "09:00", models.StatusScheduled, 50),
		appt("a3", "2024-01-15", "09:00", models.StatusScheduled, 50),
	}

	day := stats.ForDate(appointments, "2024-01-15")
	require.Len(t, day, 3)
	assert.Equal(t, []string{"a1", "a2", "a3"}, []string{day[0].ID, day[1].ID, day[2].ID})
}

func TestSummarize(t *testing.T) {
	appointments := []models.Appointment{
		appt("a1", "2024-01-15", "09:00", models.StatusCompleted, 50),
		appt("a2", "2024-01-20", "10:00", models.StatusScheduled, 30),
		appt("a3", "2024-02-01", "11:00", models.StatusCompleted, 20),
		appt("a4", "2024-02-02", "11:00", models.StatusCancelled, 99),
	}

	s := stats.Summarize(appointments)
	assert.Equal(t, 4, s.TotalAppointments)
	assert.Equal(t, 2, s.CompletedAppointments)
	assert.Equal(t, 70.0, s.TotalRevenue)
	assert.Equal(t, 35.0, s.AverageTicket)
}

func TestSummarize_Empty(t *testing.T) {
	s := stats.Summarize(nil)
	assert.Zero(t, s.TotalAppointments)
	assert.Zero(t, s.AverageTicket)
}
