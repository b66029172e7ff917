package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vitalis/internal/models/request_models"
	"vitalis/internal/services"
	"vitalis/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
}

func NewAuthController(authService services.AuthServiceInterface) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login godoc
// @Summary Admin login
// @Description Authenticate the clinic admin and return a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"token": token}, "Login successful")
}

// Logout revokes the current session; the token stops working immediately
// even though its signed expiry is still in the future.
func (a *AuthController) Logout(c *gin.Context) {
	sessionID := c.GetString("session_id")
	if sessionID != "" {
		a.authService.Logout(sessionID)
	}
	utils.RespondSuccess(c, nil, "Logged out")
}
