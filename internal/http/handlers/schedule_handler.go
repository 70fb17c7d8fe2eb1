package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"busreservation/internal/http/middleware"
	"busreservation/internal/services"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler exposes schedule CRUD, search, the capacity ledger's
// adjust endpoint and the guarded delete.
type ScheduleHandler struct {
	Bookings services.BookingProbe
}

func (h ScheduleHandler) svc(c *gin.Context) services.ScheduleService {
	return services.ScheduleService{
		Bookings:  h.Bookings,
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/schedules
func (h ScheduleHandler) List(c *gin.Context) {
	snaps, err := h.svc(c).ListSnapshots()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, snaps)
}

// GET /api/schedules/:id
func (h ScheduleHandler) Get(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	snap, err := h.svc(c).GetSnapshot(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// POST /api/schedules
func (h ScheduleHandler) Create(c *gin.Context) {
	var req services.ScheduleRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	snap, err := h.svc(c).CreateSchedule(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, snap)
}

// PUT /api/schedules/:id
func (h ScheduleHandler) Update(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	var req services.ScheduleRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	snap, err := h.svc(c).UpdateSchedule(id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// DELETE /api/schedules/:id
func (h ScheduleHandler) Delete(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc(c).DeleteSchedule(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "schedule deleted"})
}

// PUT /api/schedules/:id/seats?delta=n
//
// The ledger primitive. The guard lives in the SQL update; this endpoint
// only translates its outcome.
func (h ScheduleHandler) AdjustSeats(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	raw := strings.TrimSpace(c.Query("delta"))
	if raw == "" {
		// legacy query name used by older clients
		raw = strings.TrimSpace(c.Query("seats"))
	}
	delta, err := strconv.Atoi(raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_delta", "delta must be an integer", nil)
		return
	}

	if err := h.svc(c).AdjustSeats(id, delta); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applied": true})
}

// GET /api/search?source=&destination=&date=
func (h ScheduleHandler) Search(c *gin.Context) {
	results, err := h.svc(c).Search(c.Query("source"), c.Query("destination"), strings.TrimSpace(c.Query("date")))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
