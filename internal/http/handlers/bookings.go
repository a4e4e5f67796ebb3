package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"busline/internal/http/middleware"
	"busline/internal/services"
)

// POST /api/bookings
func CreateBooking(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "not authenticated", nil)
		return
	}

	var req services.CreateBookingInput
	if !BindJSONOrError(c, &req) {
		return
	}

	booking, err := deps.Bookings.Create(userID, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

// GET /api/bookings — the caller's own bookings, newest first.
func MyBookings(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "not authenticated", nil)
		return
	}

	bookings, err := deps.Bookings.ListByUser(userID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GET /api/bookings/:id
func GetBooking(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "not authenticated", nil)
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	booking, err := deps.Bookings.Get(id, userID, middleware.IsAdmin(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// POST /api/bookings/:id/cancel — cancel is the only transition a
// regular user can make, and only on their own booking.
func CancelBooking(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "not authenticated", nil)
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	booking, err := deps.Bookings.Cancel(id, userID, middleware.IsAdmin(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

type seatHoldRequest struct {
	Seats []int `json:"seats"`
}

// POST /api/routes/:id/holds — transient checkout holds on seats.
func HoldSeats(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "not authenticated", nil)
		return
	}
	routeID, ok := pathID(c)
	if !ok {
		return
	}

	var req seatHoldRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if err := deps.Bookings.HoldSeats(c.Request.Context(), routeID, req.Seats, userID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "seats held"})
}

// DELETE /api/routes/:id/holds
func ReleaseSeatHolds(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "not authenticated", nil)
		return
	}
	routeID, ok := pathID(c)
	if !ok {
		return
	}

	var req seatHoldRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	deps.Bookings.ReleaseHolds(c.Request.Context(), routeID, req.Seats, userID)
	c.JSON(http.StatusOK, gin.H{"message": "holds released"})
}

// GET /api/bookings/:id/ticket — e-ticket PDF (inline).
func GetBookingTicketPDF(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "not authenticated", nil)
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	booking, err := deps.Bookings.Get(id, userID, middleware.IsAdmin(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	pdfBytes, filename, err := deps.Docs.GenerateTicket(booking)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
