package handlers

import (
	"net/http"
	"strings"

	"busreservation/internal/repositories"

	"github.com/gin-gonic/gin"
)

type updateProfileRequest struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phoneNumber"`
}

// GET /api/users/profile
func GetProfile(c *gin.Context) {
	userID, ok := RequireUser(c)
	if !ok {
		return
	}
	user, err := repositories.UserRepository{}.GetByID(userID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// PUT /api/users/profile
func UpdateProfile(c *gin.Context) {
	userID, ok := RequireUser(c)
	if !ok {
		return
	}
	var req updateProfileRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	user, err := repositories.UserRepository{}.UpdateProfile(
		userID, strings.TrimSpace(req.FullName), strings.TrimSpace(req.Phone))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
