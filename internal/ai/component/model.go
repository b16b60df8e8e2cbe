package component

import (
	"context"
	"fmt"

	arkext "github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"

	"portfolio/internal/config"
)

const defaultArkBaseURL = "https://ark.cn-beijing.volces.com/api/v3"

// NewChatModel 按 provider 创建 Eino ChatModel (openai, azure, ark)
// openrouter 不经过这里，见 ai.HTTPCompleter
func NewChatModel(ctx context.Context, cfg *config.AIConfig) (model.BaseChatModel, error) {
	params := newSamplingParams(&cfg.Options)

	switch cfg.Provider {
	case "openai", "azure":
		byAzure := cfg.Provider == "azure"
		if byAzure && cfg.BaseURL == "" {
			return nil, fmt.Errorf("ai.base_url is required for azure provider")
		}
		return openai.NewChatModel(ctx, &openai.ChatModelConfig{
			Model:       cfg.Model,
			APIKey:      cfg.APIKey,
			BaseURL:     cfg.BaseURL,
			ByAzure:     byAzure,
			Timeout:     cfg.Timeout,
			Temperature: params.temperature,
			MaxTokens:   params.maxTokens,
		})
	case "ark":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = defaultArkBaseURL
		}
		// ark 客户端默认会重试，中继要求每个请求只调用一次上游
		retries := 0
		timeout := cfg.Timeout
		return arkext.NewChatModel(ctx, &arkext.ChatModelConfig{
			Model:       cfg.Model,
			APIKey:      cfg.APIKey,
			BaseURL:     baseURL,
			Timeout:     &timeout,
			RetryTimes:  &retries,
			Temperature: params.temperature,
			MaxTokens:   params.maxTokens,
		})
	default:
		return nil, fmt.Errorf("unsupported chat model provider: %s", cfg.Provider)
	}
}

// samplingParams Eino 配置里的可选参数都是指针
type samplingParams struct {
	temperature *float32
	maxTokens   *int
}

func newSamplingParams(opts *config.AIOptionsConfig) samplingParams {
	temp := float32(opts.Temperature)
	p := samplingParams{temperature: &temp}
	if opts.MaxTokens > 0 {
		maxTokens := opts.MaxTokens
		p.maxTokens = &maxTokens
	}
	return p
}
