package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

const (
	allowMethods = "GET, POST, OPTIONS"
	allowHeaders = "Content-Type, Authorization, X-Request-ID"
)

// CORS 跨域中间件
// allowedOrigins 含 "*" 时回显任意来源并允许携带凭证；预检请求直接返回 204
func CORS(allowedOrigins []string) gin.HandlerFunc {
	origins := lo.FilterMap(allowedOrigins, func(o string, _ int) (string, bool) {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		return o, o != ""
	})
	allowAll := lo.Contains(origins, "*")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			// 带凭证的响应不能用 "*"，回显请求来源
			if allowAll || lo.Contains(origins, origin) {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Access-Control-Allow-Credentials", "true")
				c.Header("Vary", "Origin")
			}
			c.Header("Access-Control-Allow-Methods", allowMethods)
			c.Header("Access-Control-Allow-Headers", allowHeaders)
			c.Header("Access-Control-Expose-Headers", HeaderRequestID)
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
