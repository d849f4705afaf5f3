package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/swapline/swapline-api/libs/go/logger"
)

// RequestLoggingMiddleware logs one line per completed request.
func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		if logger.Log == nil {
			return
		}

		logger.Log.Info("Request completed",
			zap.String("correlation_id", GetCorrelationID(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(startTime)),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("body_size", c.Writer.Size()),
		)

		for _, err := range c.Errors {
			logger.Log.Error("Request error",
				zap.String("correlation_id", GetCorrelationID(c)),
				zap.Error(err.Err),
			)
		}
	}
}
