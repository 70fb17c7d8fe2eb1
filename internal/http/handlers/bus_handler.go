package handlers

import (
	"net/http"
	"strings"

	"busreservation/internal/domain"
	"busreservation/internal/domain/models"
	"busreservation/internal/repositories"

	"github.com/gin-gonic/gin"
)

type busRequest struct {
	BusName    string `json:"busName"`
	BusNumber  string `json:"busNumber"`
	BusType    string `json:"busType"`
	TotalSeats int    `json:"totalSeats"`
}

func (r busRequest) toModel() (models.Bus, error) {
	name := strings.TrimSpace(r.BusName)
	number := strings.TrimSpace(r.BusNumber)
	busType := strings.ToUpper(strings.TrimSpace(r.BusType))
	if name == "" {
		return models.Bus{}, domain.ValidationError{Field: "busName", Msg: "is required"}
	}
	if number == "" {
		return models.Bus{}, domain.ValidationError{Field: "busNumber", Msg: "is required"}
	}
	if busType == "" {
		busType = "NON_AC"
	}
	if busType != "AC" && busType != "NON_AC" {
		return models.Bus{}, domain.ValidationError{Field: "busType", Msg: "must be AC or NON_AC"}
	}
	if r.TotalSeats <= 0 {
		return models.Bus{}, domain.ValidationError{Field: "totalSeats", Msg: "must be positive"}
	}
	return models.Bus{BusName: name, BusNumber: number, BusType: busType, TotalSeats: r.TotalSeats}, nil
}

// GET /api/buses
func ListBuses(c *gin.Context) {
	buses, err := repositories.BusRepository{}.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, buses)
}

// GET /api/buses/:id
func GetBus(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	bus, err := repositories.BusRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bus)
}

// POST /api/buses
func CreateBus(c *gin.Context) {
	var req busRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	bus, err := req.toModel()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	created, err := repositories.BusRepository{}.Create(bus)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /api/buses/:id
func UpdateBus(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	var req busRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	bus, err := req.toModel()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	bus.ID = id
	updated, err := repositories.BusRepository{}.Update(bus)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /api/buses/:id
func DeleteBus(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	if err := (repositories.BusRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "bus deleted"})
}
