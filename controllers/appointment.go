// controllers/appointment.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"salonbook/models"
	"salonbook/stats"
	"salonbook/store"
	"salonbook/utils"
)

// AppointmentController serves the appointments screen.
type AppointmentController struct {
	Store *store.Store
}

// CreateAppointmentInput defines the expected JSON structure for booking
// an appointment
type CreateAppointmentInput struct {
	ID          string  `json:"id"`
	ClientName  string  `json:"clientName" binding:"required"`
	ClientPhone string  `json:"clientPhone"`
	Service     string  `json:"service" binding:"required"`
	Date        string  `json:"date"`
	Time        string  `json:"time" binding:"required"`
	Price       float64 `json:"price" binding:"min=0"`
}

// ListAppointments returns the day's agenda sorted by time, or the whole
// collection when no date is given.
func (ac *AppointmentController) ListAppointments(c *gin.Context) {
	appointments := ac.Store.Appointments()
	if date := c.Query("date"); date != "" {
		appointments = stats.ForDate(appointments, date)
	}
	c.JSON(http.StatusOK, appointments)
}

// GetAppointment retrieves a specific appointment by ID
func (ac *AppointmentController) GetAppointment(c *gin.Context) {
	appt, ok := ac.Store.Appointment(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}
	c.JSON(http.StatusOK, appt)
}

// CreateAppointment books a new appointment
func (ac *AppointmentController) CreateAppointment(c *gin.Context) {
	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.ClientPhone != "" && !utils.ValidatePhone(input.ClientPhone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client phone number")
		return
	}

	appt := models.Appointment{
		ID:          input.ID,
		ClientName:  input.ClientName,
		ClientPhone: input.ClientPhone,
		Service:     input.Service,
		Date:        input.Date,
		Time:        input.Time,
		Price:       input.Price,
		Status:      models.StatusScheduled,
	}
	if appt.ID == "" {
		appt.ID = uuid.NewString()
	}
	if appt.Date == "" {
		appt.Date = utils.Today()
	}

	if err := ac.Store.AddAppointment(c.Request.Context(), appt); err != nil {
		respondStoreError(c, err, "Failed to create appointment")
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// UpdateAppointment applies a partial update to an appointment
func (ac *AppointmentController) UpdateAppointment(c *gin.Context) {
	id := c.Param("id")
	if _, ok := ac.Store.Appointment(id); !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	var input models.AppointmentUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := ac.Store.UpdateAppointment(c.Request.Context(), id, input); err != nil {
		respondStoreError(c, err, "Failed to update appointment")
		return
	}

	appt, _ := ac.Store.Appointment(id)
	c.JSON(http.StatusOK, appt)
}

// DeleteAppointment removes an appointment
func (ac *AppointmentController) DeleteAppointment(c *gin.Context) {
	if err := ac.Store.DeleteAppointment(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, err, "Failed to delete appointment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted"})
}

// respondStoreError maps store errors onto HTTP statuses.
func respondStoreError(c *gin.Context, err error, fallback string) {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, store.ErrDuplicateID):
		utils.RespondWithError(c, http.StatusConflict, "ID already exists")
	case errors.Is(err, store.ErrNotSignedIn):
		utils.RespondWithError(c, http.StatusUnauthorized, "Not signed in")
	case errors.As(err, &validationErrs):
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, fallback)
	}
}
