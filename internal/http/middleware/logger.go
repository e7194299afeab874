package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"pathplan.app/engine/common/logger"
)

// Logger emits one structured line per request once the handler returns.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{Component: "pathplan.http"})
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}

		switch {
		case status >= 500:
			slog.ErrorContext(ctx, "http request", attrs...)
		case status >= 400:
			slog.WarnContext(ctx, "http request", attrs...)
		default:
			slog.InfoContext(ctx, "http request", attrs...)
		}
	}
}
