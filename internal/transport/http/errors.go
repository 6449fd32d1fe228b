package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/light-bringer/shopfront-service/internal/app/shop/domain"
)

// errorStatus maps domain errors to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidSortKey),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrInvalidStock),
		errors.Is(err, domain.ErrMoneyOverflow):
		return http.StatusBadRequest

	case errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrProductExists):
		return http.StatusConflict

	case errors.Is(err, domain.ErrTokenDecode):
		return http.StatusUnauthorized

	case errors.Is(err, domain.ErrNotAdmin):
		return http.StatusForbidden

	default:
		return http.StatusInternalServerError
	}
}

// abortWithError writes the JSON error body for err. Internal errors are
// logged and hidden from the client.
func (h *Handler) abortWithError(c *gin.Context, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.AbortWithStatusJSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msg})
}
