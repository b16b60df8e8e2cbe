package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"portfolio/internal/ai"
	"portfolio/internal/config"
	"portfolio/internal/model"
	"portfolio/internal/observability/metrics"
	"portfolio/internal/pkg/logger"
)

// ChatService 对话中继 - 业务逻辑层
// 职责: 校验请求，拼装 system + history + user 消息，调用上游一次并归类结果
// 不保存任何请求间状态，可并发调用
type ChatService struct {
	completer    ai.Completer
	systemPrompt string
	configured   bool

	model           string
	maxTokens       int
	temperature     float64
	maxMessageChars int

	metrics *metrics.RelayMetrics
}

// NewChatService 创建对话服务
// cfg 在启动时构造一次后注入；API Key 为空时 completer 可以为 nil
func NewChatService(cfg *config.Config, completer ai.Completer, systemPrompt string, m *metrics.RelayMetrics) *ChatService {
	return &ChatService{
		completer:       completer,
		systemPrompt:    systemPrompt,
		configured:      cfg.AI.Configured() && completer != nil,
		model:           cfg.AI.Model,
		maxTokens:       cfg.AI.Options.MaxTokens,
		temperature:     cfg.AI.Options.Temperature,
		maxMessageChars: cfg.Relay.MaxMessageChars,
		metrics:         m,
	}
}

// Chat 处理一轮对话
// 失败时返回的 error 一定是 *RelayError
func (s *ChatService) Chat(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
	start := time.Now()
	resp, err := s.relay(ctx, logger.Ctx(ctx), req)
	return resp, s.finish(ctx, start, err)
}

// RejectBody 请求体无法解析时的结果，未配置检查仍然优先
func (s *ChatService) RejectBody(ctx context.Context, cause error) error {
	start := time.Now()
	transition(logger.Ctx(ctx), StateReceived)

	if !s.configured {
		return s.finish(ctx, start, newRelayError(StateConfigError, http.StatusServiceUnavailable, MsgNotConfigured, nil))
	}
	return s.finish(ctx, start, newRelayError(StateValidationError, http.StatusBadRequest, MsgInvalidBody, cause))
}

// finish 记录终态的指标和日志
func (s *ChatService) finish(ctx context.Context, start time.Time, err error) error {
	l := logger.Ctx(ctx)

	outcome := StateSuccess
	var relayErr *RelayError
	if errors.As(err, &relayErr) {
		outcome = relayErr.State
	} else if err != nil {
		relayErr = newRelayError(StateTransportError, http.StatusServiceUnavailable, MsgUnreachable, err)
		outcome, err = relayErr.State, relayErr
	}
	s.metrics.ObserveRequest(string(outcome))

	var event *zerolog.Event
	switch outcome {
	case StateSuccess:
		event = l.Info()
	case StateValidationError:
		event = l.Info().Err(relayErr.Err)
	case StateConfigError:
		event = l.Error()
	default:
		event = l.Warn().Err(relayErr.Err).Bool("client_canceled", ctx.Err() != nil)
	}
	event.
		Str("outcome", string(outcome)).
		Dur("latency", time.Since(start)).
		Msg("chat relay finished")

	return err
}

func (s *ChatService) relay(ctx context.Context, l *zerolog.Logger, req *model.ChatRequest) (*model.ChatResponse, error) {
	transition(l, StateReceived)

	// 未配置时不做任何网络调用
	if !s.configured {
		return nil, newRelayError(StateConfigError, http.StatusServiceUnavailable, MsgNotConfigured, nil)
	}

	transition(l, StateValidating)
	message, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	transition(l, StateForwarding)
	completionReq := &ai.CompletionRequest{
		Model:       s.model,
		Messages:    s.assemble(req.History, message),
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	}

	transition(l, StateAwaiting)
	start := time.Now()
	content, err := s.completer.Complete(ctx, completionReq)
	if err != nil {
		relayErr := classify(err)
		s.metrics.ObserveUpstreamLatency(string(relayErr.State), time.Since(start).Seconds())
		return nil, relayErr
	}
	s.metrics.ObserveUpstreamLatency(string(StateSuccess), time.Since(start).Seconds())

	return &model.ChatResponse{Response: content}, nil
}

// validate message 必须是非空 JSON 字符串；history 角色只能是 user / assistant
// 不做 trim，原样转发
func (s *ChatService) validate(req *model.ChatRequest) (string, error) {
	if req == nil {
		return "", newRelayError(StateValidationError, http.StatusBadRequest, MsgMessageMissing, errors.New("request is nil"))
	}

	raw := bytes.TrimSpace(req.Message)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", newRelayError(StateValidationError, http.StatusBadRequest, MsgMessageMissing, errors.New("message is missing"))
	}

	var message string
	if err := json.Unmarshal(raw, &message); err != nil {
		return "", newRelayError(StateValidationError, http.StatusBadRequest, MsgMessageMissing, fmt.Errorf("message is not a string: %w", err))
	}
	if message == "" {
		return "", newRelayError(StateValidationError, http.StatusBadRequest, MsgMessageMissing, errors.New("message is empty"))
	}
	if n := utf8.RuneCountInString(message); n > s.maxMessageChars {
		return "", newRelayError(StateValidationError, http.StatusBadRequest, MsgMessageTooLong, fmt.Errorf("message has %d characters, limit is %d", n, s.maxMessageChars))
	}

	for i, turn := range req.History {
		if !turn.Role.IsHistoryRole() {
			return "", newRelayError(StateValidationError, http.StatusBadRequest, MsgInvalidHistory, fmt.Errorf("history[%d] has role %q", i, turn.Role))
		}
	}

	return message, nil
}

// assemble [system] ++ history ++ [user]，history 保持原顺序和内容
func (s *ChatService) assemble(history []model.ChatTurn, message string) []model.ChatTurn {
	messages := make([]model.ChatTurn, 0, len(history)+2)
	messages = append(messages, model.ChatTurn{Role: model.RoleSystem, Content: s.systemPrompt})
	messages = append(messages, history...)
	messages = append(messages, model.ChatTurn{Role: model.RoleUser, Content: message})
	return messages
}

// classify 把上游调用错误归类到终态
func classify(err error) *RelayError {
	var upstreamErr *ai.UpstreamError
	switch {
	case errors.As(err, &upstreamErr):
		status := upstreamErr.StatusCode
		// 重定向之后仍非 2xx 且不是错误码，按网关错误处理
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		message := upstreamErr.Message
		if message == "" {
			message = MsgUpstreamFailed
		}
		return newRelayError(StateUpstreamError, status, message, err)
	case errors.Is(err, ai.ErrMalformedResponse):
		return newRelayError(StateFormatError, http.StatusBadGateway, MsgBadFormat, err)
	default:
		return newRelayError(StateTransportError, http.StatusServiceUnavailable, MsgUnreachable, err)
	}
}

func transition(l *zerolog.Logger, state State) {
	l.Debug().Str("state", string(state)).Msg("chat relay transition")
}
