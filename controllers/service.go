// controllers/service.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"salonbook/models"
	"salonbook/store"
	"salonbook/utils"
)

// ServiceController serves the salon's service catalog.
type ServiceController struct {
	Store *store.Store
}

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	ID          string  `json:"id"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,min=0"`
}

// GetServices retrieves all services for the salon
func (sc *ServiceController) GetServices(c *gin.Context) {
	cfg, ok := sc.Store.SalonConfig()
	if !ok {
		c.JSON(http.StatusOK, []models.Service{})
		return
	}
	c.JSON(http.StatusOK, cfg.Services)
}

// CreateService creates a new service, bootstrapping the salon
// configuration when none exists yet.
func (sc *ServiceController) CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	svc := models.Service{
		ID:          input.ID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
	}
	if svc.ID == "" {
		svc.ID = uuid.NewString()
	}

	if err := sc.Store.AddService(c.Request.Context(), svc); err != nil {
		respondStoreError(c, err, "Failed to create service")
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// UpdateService applies a partial update to a service
func (sc *ServiceController) UpdateService(c *gin.Context) {
	id := c.Param("id")
	if !sc.serviceExists(id) {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	var input models.ServiceUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := sc.Store.UpdateService(c.Request.Context(), id, input); err != nil {
		respondStoreError(c, err, "Failed to update service")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service updated"})
}

// DeleteService removes a service
func (sc *ServiceController) DeleteService(c *gin.Context) {
	if err := sc.Store.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, err, "Failed to delete service")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

func (sc *ServiceController) serviceExists(id string) bool {
	cfg, ok := sc.Store.SalonConfig()
	if !ok {
		return false
	}
	for _, svc := range cfg.Services {
		if svc.ID == id {
			return true
		}
	}
	return false
}
