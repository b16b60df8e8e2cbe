package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/internal/model"
	httputil "portfolio/internal/pkg/http"
	"portfolio/internal/pkg/logger"
	"portfolio/internal/service"
)

// ChatRelayer 对话中继
type ChatRelayer interface {
	Chat(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error)
	RejectBody(ctx context.Context, cause error) error
}

// ChatHandler 对话处理器
type ChatHandler struct {
	relay ChatRelayer
}

// NewChatHandler 创建对话处理器
func NewChatHandler(relay ChatRelayer) *ChatHandler {
	return &ChatHandler{relay: relay}
}

// Chat 对话接口
// @Summary      简历助手对话
// @Description  转发一轮对话到上游模型，history 仅支持 user / assistant
// @Tags         对话
// @Accept       json
// @Produce      json
// @Param        request  body      model.ChatRequest  true  "对话请求"
// @Success      200      {object}  model.ChatResponse
// @Failure      400      {object}  httputil.ErrorResponse
// @Failure      429      {object}  httputil.ErrorResponse
// @Failure      502      {object}  httputil.ErrorResponse
// @Failure      503      {object}  httputil.ErrorResponse
// @Router       /api/chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.renderError(c, h.relay.RejectBody(ctx, err))
		return
	}

	resp, err := h.relay.Chat(ctx, &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
	logger.Ctx(ctx).Debug().Str("state", string(service.StateResponded)).Int("status", http.StatusOK).Msg("chat relay transition")
}

func (h *ChatHandler) renderError(c *gin.Context, err error) {
	l := logger.Ctx(c.Request.Context())

	var relayErr *service.RelayError
	if !errors.As(err, &relayErr) {
		l.Error().Err(err).Msg("unexpected chat relay error")
		c.JSON(http.StatusInternalServerError, httputil.NewErrorResponse("Internal Server Error"))
		return
	}

	c.JSON(relayErr.Status, httputil.NewErrorResponse(relayErr.Message))
	l.Debug().Str("state", string(service.StateResponded)).Int("status", relayErr.Status).Msg("chat relay transition")
}
