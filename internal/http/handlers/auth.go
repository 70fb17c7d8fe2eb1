package handlers

import (
	"net/http"
	"strings"
	"time"

	intconfig "busreservation/internal/config"
	"busreservation/internal/domain"
	"busreservation/internal/domain/models"
	"busreservation/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phoneNumber"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a user with a bcrypt-hashed password.
// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	name := strings.TrimSpace(req.FullName)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := strings.TrimSpace(req.Phone)
	if name == "" || email == "" || phone == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "fullName, email and phoneNumber are required", nil)
		return
	}
	if len(req.Password) < 6 {
		respondError(c, http.StatusBadRequest, "validation_error", "password must be at least 6 characters", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondDomainError(c, domain.InternalError{Err: err})
		return
	}

	user, err := repositories.UserRepository{}.Create(models.User{
		FullName:  name,
		Email:     email,
		Phone:     phone,
		Role:      "USER",
		CreatedAt: time.Now(),
	}, string(hash))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "registration successful",
		"user":    user,
	})
}

// Login verifies credentials and issues a signed token.
// POST /api/auth/login
func Login(env intconfig.Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if !BindJSONOrError(c, &req) {
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))
		user, hash, err := repositories.UserRepository{}.GetByEmail(email)
		if err != nil {
			if domain.IsNotFound(err) {
				respondError(c, http.StatusUnauthorized, "bad_credentials", "invalid email or password", nil)
				return
			}
			RespondDomainError(c, err)
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
			respondError(c, http.StatusUnauthorized, "bad_credentials", "invalid email or password", nil)
			return
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": user.ID,
			"role":    user.Role,
			"exp":     time.Now().Add(24 * time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte(env.JWTSecret))
		if err != nil {
			RespondDomainError(c, domain.InternalError{Err: err})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token":   signed,
			"user":    user,
			"message": "Login Successful",
		})
	}
}
