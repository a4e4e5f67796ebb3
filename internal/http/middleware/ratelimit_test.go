package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"busline/internal/logger"
)

func limitedRouter(rps float64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(rps, logger.New(false)))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func hit(r *gin.Engine) int {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w.Code
}

func TestRateLimit_FractionalRateStillServes(t *testing.T) {
	r := limitedRouter(0.5)
	if code := hit(r); code != http.StatusOK {
		t.Fatalf("first request under a fractional rate must pass, got %d", code)
	}
}

func TestRateLimit_RejectsWhenExhausted(t *testing.T) {
	r := limitedRouter(1)
	if code := hit(r); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if code := hit(r); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 once the burst is spent, got %d", code)
	}
}
