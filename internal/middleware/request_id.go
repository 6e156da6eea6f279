package middleware

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

const ContextLoggerKey = "logger"

// RequestID propagates an incoming request id or mints one when absent. The id
// is echoed on the response and a child slog.Logger carrying it is stored in
// the gin context for handlers to pick up.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := strings.TrimSpace(ctx.GetHeader(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx.Header(requestIDHeader, requestID)
		ctx.Set(ContextLoggerKey, slog.Default().With("request_id", requestID))
		ctx.Next()
	}
}

// Logger returns the request-scoped logger, falling back to the default.
func Logger(ctx *gin.Context) *slog.Logger {
	if v, exists := ctx.Get(ContextLoggerKey); exists {
		if logger, ok := v.(*slog.Logger); ok {
			return logger
		}
	}
	return slog.Default()
}
