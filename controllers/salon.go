// controllers/salon.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"salonbook/models"
	"salonbook/store"
	"salonbook/utils"
)

// SalonController serves the salon configuration screen.
type SalonController struct {
	Store *store.Store
}

// SaveSalonInput defines the expected JSON structure for saving the
// salon's basic information
type SaveSalonInput struct {
	SalonName    string                `json:"salonName" binding:"required"`
	Slug         string                `json:"slug"`
	WorkingHours []models.WorkingHours `json:"workingHours"`
}

// UpdateHoursInput defines the expected JSON structure for replacing the
// weekly hours
type UpdateHoursInput struct {
	WorkingHours []models.WorkingHours `json:"workingHours" binding:"required"`
}

// GetSalon returns the salon configuration
func (sc *SalonController) GetSalon(c *gin.Context) {
	cfg, ok := sc.Store.SalonConfig()
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Salon not configured")
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// SaveSalon creates or replaces the salon's basic information, keeping
// the existing services.
func (sc *SalonController) SaveSalon(c *gin.Context) {
	var input SaveSalonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	slug := utils.Slugify(input.Slug)
	if slug == "" {
		slug = utils.Slugify(input.SalonName)
	}

	cfg := models.SalonConfig{
		ID:           uuid.NewString(),
		SalonName:    input.SalonName,
		Slug:         slug,
		WorkingHours: input.WorkingHours,
		Services:     []models.Service{},
	}
	if existing, ok := sc.Store.SalonConfig(); ok {
		cfg.ID = existing.ID
		cfg.Services = existing.Services
		if cfg.WorkingHours == nil {
			cfg.WorkingHours = existing.WorkingHours
		}
	}
	if cfg.WorkingHours == nil {
		cfg.WorkingHours = models.DefaultWorkingHours()
	}

	if err := sc.Store.SaveSalonConfig(c.Request.Context(), cfg); err != nil {
		respondStoreError(c, err, "Failed to save salon")
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// UpdateWorkingHours replaces the weekly hours
func (sc *SalonController) UpdateWorkingHours(c *gin.Context) {
	if _, ok := sc.Store.SalonConfig(); !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Salon not configured")
		return
	}

	var input UpdateHoursInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := sc.Store.SaveWorkingHours(c.Request.Context(), input.WorkingHours); err != nil {
		respondStoreError(c, err, "Failed to update working hours")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Working hours updated"})
}
