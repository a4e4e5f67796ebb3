package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"busline/internal/domain"
)

// GET /api/admin/bookings — every booking with its joined route.
func AllBookings(c *gin.Context) {
	bookings, err := deps.Bookings.ListAll()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

// PUT /api/admin/bookings/:id/status
func UpdateBookingStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req statusUpdateRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	booking, err := deps.Bookings.UpdateStatus(id, domain.BookingStatus(req.Status))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// GET /api/admin/stats/overview
func StatsOverview(c *gin.Context) {
	stats, err := deps.Stats.Overview()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// GET /api/admin/stats/statuses
func StatsStatuses(c *gin.Context) {
	counts, err := deps.Stats.StatusCounts()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"statuses": counts})
}

// GET /api/admin/stats/popular-routes?limit=5
func PopularRoutes(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	routes, err := deps.Stats.PopularRoutes(limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"routes": routes})
}
