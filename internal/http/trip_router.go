package api

import (
	intconfig "busreservation/internal/config"
	h "busreservation/internal/http/handlers"
	"busreservation/internal/services"

	"github.com/gin-gonic/gin"
)

// NewTripRouter serves the fleet inventory: buses, routes, schedules and
// the seat ledger. The booking probe backs the schedule deletion guard.
func NewTripRouter(env intconfig.Env, bookings services.BookingProbe) *gin.Engine {
	r := newEngine(env)

	schedules := h.ScheduleHandler{Bookings: bookings}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health("trip-service"))
		api.GET("/db-check", h.DBCheck)

		buses := api.Group("/buses")
		buses.GET("", h.ListBuses)
		buses.GET("/:id", h.GetBus)
		buses.POST("", h.CreateBus)
		buses.PUT("/:id", h.UpdateBus)
		buses.DELETE("/:id", h.DeleteBus)

		routes := api.Group("/routes")
		routes.GET("", h.ListRoutes)
		routes.GET("/:id", h.GetRoute)
		routes.POST("", h.CreateRoute)
		routes.PUT("/:id", h.UpdateRoute)
		routes.DELETE("/:id", h.DeleteRoute)

		sched := api.Group("/schedules")
		sched.GET("", schedules.List)
		sched.GET("/:id", schedules.Get)
		sched.POST("", schedules.Create)
		sched.PUT("/:id", schedules.Update)
		sched.DELETE("/:id", schedules.Delete)
		sched.PUT("/:id/seats", schedules.AdjustSeats)

		api.GET("/search", schedules.Search)
	}

	return r
}
