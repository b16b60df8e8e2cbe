package server

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"portfolio/internal/ai"
	"portfolio/internal/config"
	"portfolio/internal/observability/metrics"
	"portfolio/internal/profile"
	"portfolio/internal/service"
)

// NewRelay 组装对话中继：加载系统提示词，按配置创建上游 Completer
// API Key 未配置时不创建 Completer，中继对每个请求返回 503
func NewRelay(ctx context.Context, cfg *config.Config, m *metrics.RelayMetrics) (*service.ChatService, error) {
	systemPrompt, err := profile.LoadSystemPrompt(ctx, profile.Default, cfg.Relay.SystemPromptFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load system prompt: %w", err)
	}

	var completer ai.Completer
	if cfg.AI.Configured() {
		completer, err = ai.NewCompleter(ctx, &cfg.AI)
		if err != nil {
			return nil, fmt.Errorf("failed to create completer: %w", err)
		}
		log.Info().
			Str("provider", cfg.AI.Provider).
			Str("model", cfg.AI.Model).
			Msg("initialized chat relay")
	} else {
		log.Warn().Msg("AI API key not configured, chat relay will answer 503")
	}

	return service.NewChatService(cfg, completer, systemPrompt, m), nil
}
