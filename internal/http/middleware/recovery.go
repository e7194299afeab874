package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"pathplan.app/engine/internal/http/dto"
)

// Recovery turns a panic into a 500 JSON response and logs the stack.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.ErrorContext(c.Request.Context(), "panic recovered",
					"panic", fmt.Sprint(rec),
					"path", c.Request.URL.Path,
					"stack", string(debug.Stack()))
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "internal server error"})
			}
		}()
		c.Next()
	}
}
