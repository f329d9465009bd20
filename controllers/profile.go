// controllers/profile.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salonbook/models"
	"salonbook/store"
	"salonbook/utils"
)

// ProfileController serves the profile screen.
type ProfileController struct {
	Store *store.Store
}

type UpdateProfileInput struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	SalonName string `json:"salonName"`
	Address   string `json:"address"`
}

func (pc *ProfileController) GetProfile(c *gin.Context) {
	user, ok := pc.Store.User()
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Profile not loaded")
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile replaces the profile wholesale; the identifier stays
// bound to the signed-in identity.
func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	current, ok := pc.Store.User()
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Profile not loaded")
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	user := models.User{
		ID:        current.ID,
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		SalonName: input.SalonName,
		Address:   input.Address,
	}

	if err := pc.Store.UpdateProfile(c.Request.Context(), user); err != nil {
		respondStoreError(c, err, "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, user)
}
