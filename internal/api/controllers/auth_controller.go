package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"os"
	"weekendwish/internal/models/request_models"
	"weekendwish/pkg/utils"
)

// AuthController issues admin tokens for the place-management endpoints.
// The credential is a single bcrypt hash from the environment; there are
// no user accounts.
type AuthController struct {
	adminPasswordHash string
}

func NewAuthController() *AuthController {
	return &AuthController{
		adminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}
}

func (a *AuthController) IssueToken(c *gin.Context) {
	var req request_models.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Password is required")
		return
	}

	if a.adminPasswordHash == "" {
		utils.RespondError(c, http.StatusServiceUnavailable, "Admin access is not configured")
		return
	}

	if err := utils.ComparePasswords(a.adminPasswordHash, req.Password); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.CreateToken("admin")
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Could not create token")
		return
	}

	utils.RespondSuccess(c, gin.H{"token": token}, "Token issued successfully")
}
