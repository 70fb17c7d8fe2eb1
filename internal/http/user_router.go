package api

import (
	intconfig "busreservation/internal/config"
	h "busreservation/internal/http/handlers"

	"github.com/gin-gonic/gin"
)

// NewUserRouter serves registration, login and profile management.
func NewUserRouter(env intconfig.Env) *gin.Engine {
	r := newEngine(env)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health("user-service"))
		api.GET("/db-check", h.DBCheck)

		auth := api.Group("/auth")
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login(env))

		users := api.Group("/users")
		users.GET("/profile", h.GetProfile)
		users.PUT("/profile", h.UpdateProfile)
	}

	return r
}
