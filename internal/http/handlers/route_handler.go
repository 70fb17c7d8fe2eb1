package handlers

import (
	"net/http"
	"strings"

	"busreservation/internal/domain"
	"busreservation/internal/domain/models"
	"busreservation/internal/repositories"
	"busreservation/internal/utils"

	"github.com/gin-gonic/gin"
)

type routeRequest struct {
	FromLocation    string  `json:"fromLocation"`
	ToLocation      string  `json:"toLocation"`
	DistanceKm      int     `json:"distanceKm"`
	DurationMinutes int     `json:"durationOfTravelMinutes"`
	Price           float64 `json:"price"`
}

func (r routeRequest) toModel() (models.Route, error) {
	from := strings.TrimSpace(r.FromLocation)
	to := strings.TrimSpace(r.ToLocation)
	if from == "" || to == "" {
		return models.Route{}, domain.ValidationError{Field: "fromLocation/toLocation", Msg: "are required"}
	}
	if strings.EqualFold(from, to) {
		return models.Route{}, domain.ValidationError{Field: "toLocation", Msg: "must differ from fromLocation"}
	}
	if r.Price <= 0 {
		return models.Route{}, domain.ValidationError{Field: "price", Msg: "must be positive"}
	}
	return models.Route{
		FromLocation:    from,
		ToLocation:      to,
		DistanceKm:      r.DistanceKm,
		DurationMinutes: r.DurationMinutes,
		Price:           utils.CentsFromFloat(r.Price),
	}, nil
}

func routeJSON(rt models.Route) gin.H {
	return gin.H{
		"id":                      rt.ID,
		"fromLocation":            rt.FromLocation,
		"toLocation":              rt.ToLocation,
		"distanceKm":              rt.DistanceKm,
		"durationOfTravelMinutes": rt.DurationMinutes,
		"price":                   utils.FloatFromCents(rt.Price),
	}
}

// GET /api/routes
func ListRoutes(c *gin.Context) {
	routes, err := repositories.RouteRepository{}.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, routeJSON(rt))
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/routes/:id
func GetRoute(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	rt, err := repositories.RouteRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, routeJSON(rt))
}

// POST /api/routes
func CreateRoute(c *gin.Context) {
	var req routeRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	rt, err := req.toModel()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	created, err := repositories.RouteRepository{}.Create(rt)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, routeJSON(created))
}

// PUT /api/routes/:id
func UpdateRoute(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	var req routeRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	rt, err := req.toModel()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	rt.ID = id
	updated, err := repositories.RouteRepository{}.Update(rt)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, routeJSON(updated))
}

// DELETE /api/routes/:id
func DeleteRoute(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	if err := (repositories.RouteRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "route deleted"})
}
