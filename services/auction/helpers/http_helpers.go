package helpers

import (
	"errors"
	"net/http"

	"agro-trade/internal/auctionerrors"
	"agro-trade/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	utils.JSONError(c, http.StatusBadRequest, "missing or invalid request fields")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrCropNotFound):
		return http.StatusNotFound, "crop not found"
	case errors.Is(err, auctionerrors.ErrInvalidInput):
		return http.StatusBadRequest, "missing or invalid request fields"
	case errors.Is(err, auctionerrors.ErrAuctionClosed):
		return http.StatusBadRequest, "auction is closed"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		// Keep the wrapped message: it carries the current price for display.
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
