package api

import (
	intconfig "busreservation/internal/config"
	h "busreservation/internal/http/handlers"
	"busreservation/internal/services"

	"github.com/gin-gonic/gin"
)

// NewBookingRouter serves reservations, cancellations and e-tickets. The
// trip gateway reaches the trip service for snapshots and seat adjustments.
func NewBookingRouter(env intconfig.Env, trips services.TripGateway) *gin.Engine {
	r := newEngine(env)

	bookings := h.BookingHandler{Trips: trips}
	docs := h.DocsHandler{Trips: trips}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health("booking-service"))
		api.GET("/db-check", h.DBCheck)

		b := api.Group("/bookings")
		b.POST("", bookings.Create)
		b.GET("/admin/all", bookings.ListAll)
		b.GET("/user", bookings.ListMine)
		b.GET("/user/upcoming", bookings.Upcoming)
		// gin requires a single param name at this depth, so :id is the
		// schedule id on the check and passengers routes.
		b.GET("/check-schedule/:id", bookings.CheckSchedule)
		b.GET("/schedule/:id/passengers", bookings.PassengersBySchedule)
		b.GET("/:id", bookings.Detail)
		b.PUT("/:id/cancel", bookings.Cancel)

		passengers := api.Group("/passengers")
		passengers.GET("/:id/e-ticket", docs.ETicket)
	}

	return r
}
