package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chronominerals/minerals-insight/services"
)

// UserController exposes account management for administrators.
type UserController struct {
	auth *services.AuthService
}

// NewUserController creates a new user controller.
func NewUserController(auth *services.AuthService) *UserController {
	return &UserController{auth: auth}
}

// ListUsers returns every account without password hashes
func (ctrl *UserController) ListUsers(c *gin.Context) {
	users, err := ctrl.auth.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}
