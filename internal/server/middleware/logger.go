package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"portfolio/internal/pkg/logger"
)

// Logger 访问日志中间件
// 依赖 RequestID 先把带 request_id 的 logger 放进 context
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		l := logger.Ctx(c.Request.Context())
		event := l.Info()
		if status >= 400 {
			event = l.Warn()
		}
		if status >= 500 {
			event = l.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", query).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Int("body_size", c.Writer.Size()).
			Msg("HTTP request")
	}
}
