package api

import (
	stdhttp "net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"busline/internal/config"
	h "busline/internal/http/handlers"
	"busline/internal/http/middleware"
	"busline/internal/logger"
)

func NewRouter(env config.Env, log *logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(log),
		gin.Recovery(),
		cors.New(cors.Config{
			AllowOrigins:     env.CORSAllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
			AllowCredentials: true,
			MaxAge:           24 * time.Hour,
		}),
		middleware.RateLimit(env.RateLimitRPS, log),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Warnf("http", "failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	authn := middleware.Authorize([]byte(env.JWTSecret))
	adminOnly := middleware.RequireRoles("admin")

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)
		auth.GET("/me", authn, h.Me)
		auth.PUT("/profile", authn, h.UpdateProfile)

		// Routes: reads are public, writes are admin-only.
		api.GET("/routes", h.ListRoutes)
		api.GET("/routes/search", h.SearchRoutes)
		api.GET("/routes/:id", h.GetRoute)
		api.GET("/cities", h.Cities)
		api.POST("/routes", authn, adminOnly, h.CreateRoute)
		api.PUT("/routes/:id", authn, adminOnly, h.UpdateRoute)
		api.DELETE("/routes/:id", authn, adminOnly, h.DeleteRoute)

		// Checkout seat holds
		api.POST("/routes/:id/holds", authn, h.HoldSeats)
		api.DELETE("/routes/:id/holds", authn, h.ReleaseSeatHolds)

		// Bookings
		bookings := api.Group("/bookings", authn)
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.MyBookings)
		bookings.GET("/:id", h.GetBooking)
		bookings.POST("/:id/cancel", h.CancelBooking)
		bookings.GET("/:id/ticket", h.GetBookingTicketPDF)

		// Admin console
		admin := api.Group("/admin", authn, adminOnly)
		admin.GET("/bookings", h.AllBookings)
		admin.PUT("/bookings/:id/status", h.UpdateBookingStatus)
		admin.GET("/stats/overview", h.StatsOverview)
		admin.GET("/stats/statuses", h.StatsStatuses)
		admin.GET("/stats/popular-routes", h.PopularRoutes)
	}

	return r
}
