package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	httputil "portfolio/internal/pkg/http"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	configured bool
}

// NewHealthHandler 创建健康检查处理器
// configured 表示上游 API Key 是否已配置
func NewHealthHandler(configured bool) *HealthHandler {
	return &HealthHandler{configured: configured}
}

// Health 健康检查
// @Summary      健康检查
// @Tags         系统
// @Produce      json
// @Success      200  {object}  httputil.StatusResponse
// @Router       /api/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, httputil.StatusResponse{Status: "ok"})
}

// Ready 就绪检查，未配置 API Key 时对话不可用
// @Summary      就绪检查
// @Tags         系统
// @Produce      json
// @Success      200  {object}  httputil.StatusResponse
// @Failure      503  {object}  httputil.StatusResponse
// @Router       /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	if !h.configured {
		c.JSON(http.StatusServiceUnavailable, httputil.StatusResponse{Status: "not configured"})
		return
	}
	c.JSON(http.StatusOK, httputil.StatusResponse{Status: "ready"})
}
