package models

// Appointment statuses.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Appointment is a single booking. Service references a salon service
// by name only; renaming or deleting the service leaves existing
// appointments untouched. Date is "YYYY-MM-DD" and Time is "HH:MM",
// zero-padded so lexical order matches chronological order.
type Appointment struct {
	ID          string  `json:"id" validate:"required"`
	ClientName  string  `json:"clientName" validate:"required"`
	ClientPhone string  `json:"clientPhone"`
	Service     string  `json:"service" validate:"required"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string  `json:"time" validate:"required,datetime=15:04"`
	Price       float64 `json:"price" validate:"min=0"`
	Status      string  `json:"status" validate:"required,oneof=scheduled completed cancelled"`
}

// AppointmentUpdate carries a partial update; nil fields are left as-is.
type AppointmentUpdate struct {
	ClientName  *string  `json:"clientName"`
	ClientPhone *string  `json:"clientPhone"`
	Service     *string  `json:"service"`
	Date        *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time        *string  `json:"time" validate:"omitempty,datetime=15:04"`
	Price       *float64 `json:"price" validate:"omitempty,min=0"`
	Status      *string  `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
}

// Apply merges the non-nil fields of u into a. The ID never changes.
func (a *Appointment) Apply(u AppointmentUpdate) {
	if u.ClientName != nil {
		a.ClientName = *u.ClientName
	}
	if u.ClientPhone != nil {
		a.ClientPhone = *u.ClientPhone
	}
	if u.Service != nil {
		a.Service = *u.Service
	}
	if u.Date != nil {
		a.Date = *u.Date
	}
	if u.Time != nil {
		a.Time = *u.Time
	}
	if u.Price != nil {
		a.Price = *u.Price
	}
	if u.Status != nil {
		a.Status = *u.Status
	}
}
