package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"vehicle-auction/internal/auctionerrors"
	"vehicle-auction/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrListingNotFound):
		return http.StatusNotFound, "listing not found"
	case errors.Is(err, auctionerrors.ErrVehicleNotFound):
		return http.StatusNotFound, "vehicle not found"
	case errors.Is(err, auctionerrors.ErrMemberNotFound):
		return http.StatusNotFound, "member not found"
	case errors.Is(err, auctionerrors.ErrRecordNotFound):
		return http.StatusNotFound, "record not found"
	case errors.Is(err, auctionerrors.ErrInsufficientBalance):
		return http.StatusConflict, "insufficient balance for bid"
	case errors.Is(err, auctionerrors.ErrSelfBid):
		return http.StatusConflict, "bidder already owns the vehicle"
	case errors.Is(err, auctionerrors.ErrNoOffers):
		return http.StatusConflict, "no offers exist on the listing"
	case errors.Is(err, auctionerrors.ErrBalanceOverflow):
		return http.StatusConflict, "balance arithmetic would overflow"
	case errors.Is(err, auctionerrors.ErrUnknownFunction):
		return http.StatusNotFound, "unknown function"
	case errors.Is(err, auctionerrors.ErrArgumentCount):
		return http.StatusBadRequest, "wrong number of arguments"
	case errors.Is(err, auctionerrors.ErrMalformedAmount):
		return http.StatusBadRequest, "malformed numeric input"
	case errors.Is(err, auctionerrors.ErrMalformedRecord):
		return http.StatusBadRequest, "malformed record"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
