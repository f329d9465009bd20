// controllers/auth.go
package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"salonbook/auth"
	"salonbook/store"
	"salonbook/utils"
)

// TokenVerifier checks a provider-issued ID token and maps it onto an
// identity.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (auth.Identity, error)
}

// AuthController handles the Google sign-in exchange and the session
// lifecycle.
type AuthController struct {
	Auth      *auth.Manager
	Verifier  TokenVerifier
	Store     *store.Store
	JWTSecret string
	JWTExpiry time.Duration
}

type GoogleSignInInput struct {
	IDToken string `json:"idToken" binding:"required"`
}

// GoogleSignIn verifies a Google ID token, signs the identity in (which
// loads or seeds the persisted aggregates) and issues a session token.
func (ac *AuthController) GoogleSignIn(c *gin.Context) {
	var input GoogleSignInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	identity, err := ac.Verifier.Verify(c.Request.Context(), input.IDToken)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid Google token")
		return
	}

	ac.Auth.SignIn(identity)

	// a missing profile here means the listener's load failed; report
	// it now rather than as 401s on every later request
	user, ok := ac.Store.User()
	if !ok {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	token, err := auth.GenerateToken(ac.JWTSecret, identity, ac.JWTExpiry)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to issue session token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// SignOut clears the in-memory state; persisted data survives for the
// next sign-in.
func (ac *AuthController) SignOut(c *gin.Context) {
	ac.Auth.SignOut()
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// Me returns the signed-in profile
func (ac *AuthController) Me(c *gin.Context) {
	user, ok := ac.Store.User()
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Profile not loaded")
		return
	}
	c.JSON(http.StatusOK, user)
}
