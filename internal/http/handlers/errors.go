package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zephyls/CW7-S27970/internal/domain"
	"github.com/Zephyls/CW7-S27970/internal/http/middleware"
)

func respondError(c *gin.Context, status int, code, message string) {
	if code == "" {
		code = http.StatusText(status)
	}
	payload := gin.H{
		"error": message,
		"code":  code,
	}
	if reqID := middleware.GetRequestID(c); reqID != "" {
		payload["request_id"] = reqID
	}
	c.JSON(status, payload)
}

// RespondDomainError maps domain errors to HTTP responses. Store errors are
// never forwarded verbatim.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsCapacity(err):
		respondError(c, http.StatusBadRequest, "capacity_exceeded", err.Error())
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "already_registered", err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong")
	}
}
