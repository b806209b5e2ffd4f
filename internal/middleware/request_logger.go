package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/quote-service/internal/domain/model"
	"github.com/guttosm/quote-service/internal/logger"
)

// RequestLogger logs every request to the console and, when sink is set,
// stores it as a log entry.
func RequestLogger(sink AuditSink) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		requestID := GetRequestID(c)

		log := logger.Logger().With().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status_code", statusCode).
			Int64("duration_ms", latency.Milliseconds()).
			Str("ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Logger()

		switch levelForStatus(statusCode) {
		case model.LogLevelError:
			log.Error().Msg("HTTP request")
		case model.LogLevelWarn:
			log.Warn().Msg("HTTP request")
		default:
			log.Info().Msg("HTTP request")
		}

		if sink == nil {
			return
		}
		sink.Log(&model.LogEntry{
			Timestamp:  time.Now(),
			Level:      levelForStatus(statusCode),
			Message:    "HTTP request",
			RequestID:  requestID,
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: statusCode,
			Duration:   latency.Milliseconds(),
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
		})
	}
}

func levelForStatus(statusCode int) string {
	switch {
	case statusCode >= 500:
		return model.LogLevelError
	case statusCode >= 400:
		return model.LogLevelWarn
	default:
		return model.LogLevelInfo
	}
}
