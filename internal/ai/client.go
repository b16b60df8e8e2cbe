package ai

import (
	"context"
	"fmt"

	"portfolio/internal/config"
	"portfolio/internal/model"
)

// Completer 上游补全能力
// 实现必须只发起一次上游调用，不重试；错误类型为
// *TransportError、*UpstreamError 或包装了 ErrMalformedResponse 的错误
type Completer interface {
	Complete(ctx context.Context, req *CompletionRequest) (string, error)
}

// CompletionRequest 发往上游的补全请求
type CompletionRequest struct {
	Model       string
	Messages    []model.ChatTurn
	MaxTokens   int
	Temperature float64
}

// NewCompleter 按 provider 创建 Completer
// openrouter 直接走 HTTP，可以透传上游状态码；其余 provider 走 Eino ChatModel
func NewCompleter(ctx context.Context, cfg *config.AIConfig) (Completer, error) {
	switch cfg.Provider {
	case "openrouter", "":
		return NewHTTPCompleter(cfg, nil), nil
	case "openai", "azure", "ark":
		chain, err := NewChatChain(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create chat chain: %w", err)
		}
		return chain, nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", cfg.Provider)
	}
}
