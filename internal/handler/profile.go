package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	httputil "portfolio/internal/pkg/http"
	"portfolio/internal/profile"
)

// ProjectList 项目列表响应
type ProjectList struct {
	Projects []profile.Project `json:"projects"`
}

// ProfileHandler 作品集数据处理器
type ProfileHandler struct {
	profile *profile.Profile
}

// NewProfileHandler 创建作品集数据处理器
func NewProfileHandler(p *profile.Profile) *ProfileHandler {
	return &ProfileHandler{profile: p}
}

// Projects 项目列表
// @Summary      项目列表
// @Tags         作品集
// @Produce      json
// @Param        featured  query     bool  false  "只返回精选项目"
// @Success      200       {object}  ProjectList
// @Failure      400       {object}  httputil.ErrorResponse
// @Router       /api/projects [get]
func (h *ProfileHandler) Projects(c *gin.Context) {
	featured := false
	if v := c.Query("featured"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, httputil.NewErrorResponse("featured must be true or false."))
			return
		}
		featured = b
	}

	c.JSON(http.StatusOK, ProjectList{Projects: h.profile.ListProjects(featured)})
}
