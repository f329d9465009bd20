package models

// DaysOfWeek lists the calendar day labels in display order. Working
// hours are kept in this order, one entry per day.
var DaysOfWeek = []string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// WorkingHours describes one day's opening window. Open and close times
// are "HH:MM" strings; no check that the open time precedes the close
// time.
type WorkingHours struct {
	Day       string `json:"day" validate:"required"`
	IsOpen    bool   `json:"isOpen"`
	OpenTime  string `json:"openTime" validate:"omitempty,datetime=15:04"`
	CloseTime string `json:"closeTime" validate:"omitempty,datetime=15:04"`
}

// SalonConfig is the salon's public configuration. At most one exists
// per profile; it is created lazily on the first service add or explicit
// save. Slug is expected to be URL-safe (lowercase, hyphenated) but the
// store does not enforce the normalization.
type SalonConfig struct {
	ID           string         `json:"id" validate:"required"`
	SalonName    string         `json:"salonName"`
	Slug         string         `json:"slug"`
	WorkingHours []WorkingHours `json:"workingHours" validate:"dive"`
	Services     []Service      `json:"services" validate:"dive"`
}

// DefaultWorkingHours returns the initial weekly template: closed on
// Sunday, 09:00-18:00 otherwise.
func DefaultWorkingHours() []WorkingHours {
	hours := make([]WorkingHours, 0, len(DaysOfWeek))
	for _, day := range DaysOfWeek {
		hours = append(hours, WorkingHours{
			Day:       day,
			IsOpen:    day != "Sunday",
			OpenTime:  "09:00",
			CloseTime: "18:00",
		})
	}
	return hours
}
