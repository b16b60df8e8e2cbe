package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio/internal/pkg/logger"
)

const (
	// HeaderRequestID 请求 ID 头
	HeaderRequestID = "X-Request-ID"

	requestIDKey = "request_id"
	maxIDLength  = 128
)

// RequestID 为每个请求分配 ID，沿用客户端传入的值
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxIDLength {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), id))

		c.Next()
	}
}

// GetRequestID 获取当前请求 ID
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
