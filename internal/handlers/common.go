package handlers

import (
	"errors"
	"net/http"

	"github.com/bhulekh-dev/bhulekh/internal/aggregate"
	"github.com/bhulekh-dev/bhulekh/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondAggregateError maps the aggregate error taxonomy onto HTTP statuses:
// invalid input 400, not found 404, conflict 409, anything else 500.
func respondAggregateError(ctx *gin.Context, err error, logMsg string) {
	var aggErr *aggregate.Error

	if errors.As(err, &aggErr) && aggErr.Kind != aggregate.KindUnexpected {
		ctx.JSON(statusFor(aggErr.Kind), gin.H{"error": aggErr.Message})
		return
	}

	middleware.Logger(ctx).Error(logMsg, "error", err)

	message := "Internal server error"
	if errors.As(err, &aggErr) {
		message = aggErr.Message
	}

	ctx.JSON(http.StatusInternalServerError, gin.H{"error": message})
}

func statusFor(kind aggregate.ErrorKind) int {
	switch kind {
	case aggregate.KindInvalidInput:
		return http.StatusBadRequest
	case aggregate.KindNotFound:
		return http.StatusNotFound
	case aggregate.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
