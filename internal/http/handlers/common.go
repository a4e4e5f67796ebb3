package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"busline/internal/config"
	"busline/internal/http/middleware"
	"busline/internal/logger"
	"busline/internal/services"
)

// Deps holds the wired services for the handlers package. Set once at
// startup via Init, the same way the shared DB handle is package-level.
type Deps struct {
	Env      config.Env
	Log      *logger.Logger
	Auth     services.AuthService
	Routes   services.RouteService
	Bookings services.BookingService
	Stats    services.StatsService
	Docs     services.DocsService
}

var deps Deps

func Init(d Deps) {
	deps = d
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		respondError(c, http.StatusBadRequest, "empty_body", "request body is required", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "invalid request payload", err)
		return false
	}
	return true
}

func requestID(c *gin.Context) string {
	return middleware.GetRequestID(c)
}
