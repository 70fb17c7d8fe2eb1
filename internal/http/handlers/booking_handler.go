package handlers

import (
	"net/http"

	"busreservation/internal/domain/models"
	"busreservation/internal/http/middleware"
	"busreservation/internal/services"
	"busreservation/internal/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler wires the booking workflows to HTTP. The trip gateway is
// injected at router construction.
type BookingHandler struct {
	Trips services.TripGateway
}

func (h BookingHandler) svc(c *gin.Context) services.BookingService {
	return services.BookingService{
		Trips:     h.Trips,
		RequestID: middleware.GetRequestID(c),
	}
}

// POST /api/bookings
func (h BookingHandler) Create(c *gin.Context) {
	userID, ok := RequireUser(c)
	if !ok {
		return
	}

	var req services.BookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	detail, err := h.svc(c).CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bookingJSON(detail))
}

// PUT /api/bookings/:id/cancel
func (h BookingHandler) Cancel(c *gin.Context) {
	userID, ok := RequireUser(c)
	if !ok {
		return
	}
	bookingID, ok := PathID(c, "id")
	if !ok {
		return
	}

	cancellation, err := h.svc(c).CancelBooking(c.Request.Context(), bookingID, userID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cancellationJSON(cancellation))
}

// GET /api/bookings/admin/all
func (h BookingHandler) ListAll(c *gin.Context) {
	details, err := h.svc(c).ListAll(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookingListJSON(details))
}

// GET /api/bookings/user
func (h BookingHandler) ListMine(c *gin.Context) {
	userID, ok := RequireUser(c)
	if !ok {
		return
	}
	details, err := h.svc(c).ListByUser(c.Request.Context(), userID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookingListJSON(details))
}

// GET /api/bookings/user/upcoming
func (h BookingHandler) Upcoming(c *gin.Context) {
	userID, ok := RequireUser(c)
	if !ok {
		return
	}
	details, err := h.svc(c).UpcomingJourneys(c.Request.Context(), userID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookingListJSON(details))
}

// GET /api/bookings/:id
func (h BookingHandler) Detail(c *gin.Context) {
	bookingID, ok := PathID(c, "id")
	if !ok {
		return
	}
	detail, err := h.svc(c).GetBooking(c.Request.Context(), bookingID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookingJSON(detail))
}

// GET /api/bookings/check-schedule/:id
//
// The deletion guard's entry point: a bare boolean body, so the trip
// service can distinguish "no bookings" from "could not ask".
func (h BookingHandler) CheckSchedule(c *gin.Context) {
	scheduleID, ok := PathID(c, "id")
	if !ok {
		return
	}
	has, err := h.svc(c).HasConfirmedBooking(scheduleID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, has)
}

// GET /api/bookings/schedule/:id/passengers
func (h BookingHandler) PassengersBySchedule(c *gin.Context) {
	scheduleID, ok := PathID(c, "id")
	if !ok {
		return
	}
	passengers, err := h.svc(c).PassengersBySchedule(scheduleID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, passengers)
}

func bookingJSON(d services.BookingDetail) gin.H {
	b := d.Booking
	out := gin.H{
		"id":          b.ID,
		"reference":   b.Reference,
		"userId":      b.UserID,
		"scheduleId":  b.ScheduleID,
		"bookingTime": utils.FormatDateTime(b.BookingTime),
		"totalAmount": utils.FloatFromCents(b.TotalAmount),
		"noOfSeats":   b.SeatCount,
		"status":      b.Status,
		"passengers":  passengerListJSON(b.Passengers),
	}
	if d.Schedule != nil {
		out["schedule"] = d.Schedule
	}
	return out
}

func bookingListJSON(details []services.BookingDetail) []gin.H {
	out := make([]gin.H, 0, len(details))
	for _, d := range details {
		out = append(out, bookingJSON(d))
	}
	return out
}

func passengerListJSON(passengers []models.Passenger) []models.Passenger {
	if passengers == nil {
		return []models.Passenger{}
	}
	return passengers
}

func cancellationJSON(c models.Cancellation) gin.H {
	return gin.H{
		"id":            c.ID,
		"bookingId":     c.BookingID,
		"userId":        c.UserID,
		"cancelDate":    utils.FormatDateTime(c.CancelDate),
		"refundAmount":  utils.FloatFromCents(c.RefundAmount),
		"refundPercent": c.RefundPercent,
		"message":       services.CancelMessage,
	}
}
