package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"portfolio/internal/config"
	"portfolio/internal/model"
)

const (
	defaultBaseURL = "https://openrouter.ai/api/v1"

	// maxResponseBytes 上游响应体读取上限
	maxResponseBytes = 4 << 20
)

var tracer = otel.Tracer("portfolio/internal/ai")

// upstreamRequest OpenAI 兼容的 chat-completion 请求体
type upstreamRequest struct {
	Model       string           `json:"model"`
	Messages    []model.ChatTurn `json:"messages"`
	MaxTokens   int              `json:"max_tokens"`
	Temperature float64          `json:"temperature"`
}

// HTTPCompleter 直接调用 OpenAI 兼容接口 (默认 OpenRouter)
type HTTPCompleter struct {
	endpoint string
	apiKey   string
	referer  string
	title    string
	timeout  time.Duration
	client   *http.Client
}

// NewHTTPCompleter 创建 HTTP Completer，client 为 nil 时使用独立的 http.Client
func NewHTTPCompleter(cfg *config.AIConfig, client *http.Client) *HTTPCompleter {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if client == nil {
		client = &http.Client{}
	}

	return &HTTPCompleter{
		endpoint: strings.TrimRight(baseURL, "/") + "/chat/completions",
		apiKey:   cfg.APIKey,
		referer:  cfg.Referer,
		title:    cfg.Title,
		timeout:  cfg.Timeout,
		client:   client,
	}
}

// Complete 发起一次补全调用并等待完整响应
func (c *HTTPCompleter) Complete(ctx context.Context, req *CompletionRequest) (content string, err error) {
	ctx, span := tracer.Start(ctx, "ai.chat_completion",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("ai.model", req.Model),
			attribute.Int("ai.messages", len(req.Messages)),
		))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	body, err := json.Marshal(upstreamRequest{
		Model:       req.Model,
		Messages:    req.Messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshal upstream request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build upstream request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	if c.referer != "" {
		httpReq.Header.Set("HTTP-Referer", c.referer)
	}
	if c.title != "" {
		httpReq.Header.Set("X-Title", c.title)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("read upstream body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    parseUpstreamError(data),
		}
	}

	return ParseCompletion(data)
}
