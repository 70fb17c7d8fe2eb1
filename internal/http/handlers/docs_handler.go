package handlers

import (
	"fmt"
	"net/http"

	"busreservation/internal/http/middleware"
	"busreservation/internal/services"

	"github.com/gin-gonic/gin"
)

type DocsHandler struct {
	Trips services.TripGateway
}

// GET /api/passengers/:id/e-ticket
func (h DocsHandler) ETicket(c *gin.Context) {
	passengerID, ok := PathID(c, "id")
	if !ok {
		return
	}

	svc := services.DocsService{
		Trips:     h.Trips,
		RequestID: middleware.GetRequestID(c),
	}
	pdf, filename, err := svc.GenerateETicket(c.Request.Context(), passengerID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
