package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"busline/internal/domain"
)

// GET /api/routes
func ListRoutes(c *gin.Context) {
	routes, err := deps.Routes.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"routes": routes})
}

// GET /api/routes/:id
func GetRoute(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	route, err := deps.Routes.Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"route": route})
}

// GET /api/routes/search?origin=&destination=&date=
func SearchRoutes(c *gin.Context) {
	routes, err := deps.Routes.Search(
		c.Query("origin"),
		c.Query("destination"),
		c.Query("date"),
	)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"routes": routes})
}

// GET /api/cities
func Cities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cities": deps.Routes.Cities()})
}

type routeRequest struct {
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	DepartureTime  string `json:"departureTime"`
	ArrivalTime    string `json:"arrivalTime"`
	TravelDate     string `json:"travelDate"`
	Price          int64  `json:"price"`
	SeatsAvailable int    `json:"seatsAvailable"`
	SeatsTotal     int    `json:"seatsTotal"`
	Duration       string `json:"duration"`
	Carrier        string `json:"carrier"`
	BusClass       string `json:"busClass"`
}

func (r routeRequest) toDomain() domain.Route {
	return domain.Route{
		Origin:         r.Origin,
		Destination:    r.Destination,
		DepartureTime:  r.DepartureTime,
		ArrivalTime:    r.ArrivalTime,
		TravelDate:     r.TravelDate,
		Price:          r.Price,
		SeatsAvailable: r.SeatsAvailable,
		SeatsTotal:     r.SeatsTotal,
		Duration:       r.Duration,
		Carrier:        r.Carrier,
		BusClass:       r.BusClass,
	}
}

// POST /api/routes (admin)
func CreateRoute(c *gin.Context) {
	var req routeRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	route, err := deps.Routes.Create(req.toDomain())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"route": route})
}

// PUT /api/routes/:id (admin) — full overwrite of editable fields.
func UpdateRoute(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req routeRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	route, err := deps.Routes.Update(id, req.toDomain())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"route": route})
}

// DELETE /api/routes/:id (admin)
func DeleteRoute(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := deps.Routes.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "route deleted"})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_id", "invalid id", err)
		return 0, false
	}
	return id, true
}
