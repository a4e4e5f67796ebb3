package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"busline/internal/domain"
)

func respondError(c *gin.Context, status int, code, message string, err error) {
	payload := gin.H{
		"error": message,
		"code":  code,
	}
	if rid := requestID(c); rid != "" {
		payload["request_id"] = rid
	}
	if err != nil && status < http.StatusInternalServerError {
		payload["details"] = err.Error()
	}
	c.JSON(status, payload)
}

// RespondDomainError maps domain errors to HTTP responses. Internal
// errors keep their store detail out of the response body.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "unauthorized", err.Error(), nil)
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error(), nil)
	default:
		cause := err
		if domain.IsInternal(err) {
			if u := errors.Unwrap(err); u != nil {
				cause = u
			}
		}
		deps.Log.Errorf("http", "internal error request_id=%s: %v", requestID(c), cause)
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong", nil)
	}
}
