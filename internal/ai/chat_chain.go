package ai

import (
	"context"
	"fmt"
	"time"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/samber/lo"

	"portfolio/internal/ai/component"
	"portfolio/internal/config"
	"portfolio/internal/model"
)

// ChatChain 基于 Eino ChatModel 的 Completer (openai / azure / ark)
// SDK 不暴露上游状态码，调用失败统一按 TransportError 处理
type ChatChain struct {
	chatModel einomodel.BaseChatModel
	timeout   time.Duration
}

// NewChatChain 创建对话链
func NewChatChain(ctx context.Context, cfg *config.AIConfig) (*ChatChain, error) {
	chatModel, err := component.NewChatModel(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return newChatChain(chatModel, cfg.Timeout), nil
}

func newChatChain(chatModel einomodel.BaseChatModel, timeout time.Duration) *ChatChain {
	return &ChatChain{
		chatModel: chatModel,
		timeout:   timeout,
	}
}

// Complete 同步执行一次对话
func (c *ChatChain) Complete(ctx context.Context, req *CompletionRequest) (content string, err error) {
	ctx, span := tracer.Start(ctx, "ai.chat_model.generate")
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	messages := lo.Map(req.Messages, func(m model.ChatTurn, _ int) *schema.Message {
		return &schema.Message{
			Role:    schema.RoleType(m.Role),
			Content: m.Content,
		}
	})

	resp, err := c.chatModel.Generate(ctx, messages,
		einomodel.WithTemperature(float32(req.Temperature)),
		einomodel.WithMaxTokens(req.MaxTokens),
	)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	if resp == nil || resp.Content == "" {
		return "", fmt.Errorf("%w: chat model returned empty content", ErrMalformedResponse)
	}

	return resp.Content, nil
}
