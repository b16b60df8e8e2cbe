package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// maxUpstreamMessage 透传给用户的上游错误信息最大长度
const maxUpstreamMessage = 300

// ParseCompletion 从 chat-completion 响应体中取出 choices[0].message.content
// 任何字段缺失或类型不符都返回 ErrMalformedResponse，不对结构做任何假设
func ParseCompletion(body []byte) (string, error) {
	var payload struct {
		Choices json.RawMessage `json:"choices"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("%w: body is not a JSON object", ErrMalformedResponse)
	}
	if len(payload.Choices) == 0 {
		return "", fmt.Errorf("%w: choices is missing", ErrMalformedResponse)
	}

	var choices []json.RawMessage
	if err := json.Unmarshal(payload.Choices, &choices); err != nil {
		return "", fmt.Errorf("%w: choices is not an array", ErrMalformedResponse)
	}
	if len(choices) == 0 {
		return "", fmt.Errorf("%w: choices is empty", ErrMalformedResponse)
	}

	var first struct {
		Message struct {
			Content json.RawMessage `json:"content"`
		} `json:"message"`
	}
	if err := json.Unmarshal(choices[0], &first); err != nil {
		return "", fmt.Errorf("%w: choices[0] has no message object", ErrMalformedResponse)
	}

	var content string
	if err := json.Unmarshal(first.Message.Content, &content); err != nil {
		return "", fmt.Errorf("%w: choices[0].message.content is not a string", ErrMalformedResponse)
	}
	if content == "" {
		return "", fmt.Errorf("%w: choices[0].message.content is empty", ErrMalformedResponse)
	}

	return content, nil
}

// parseUpstreamError 解析上游错误体 {"error":{"message":"..."}}
// 兼容 {"error":"..."}，都没有时返回空串
func parseUpstreamError(body []byte) string {
	var payload struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Error) == 0 {
		return ""
	}

	var nested struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(payload.Error, &nested); err == nil {
		return truncate(strings.TrimSpace(nested.Message))
	}

	var flat string
	if err := json.Unmarshal(payload.Error, &flat); err == nil {
		return truncate(strings.TrimSpace(flat))
	}

	return ""
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) <= maxUpstreamMessage {
		return s
	}
	return string(r[:maxUpstreamMessage]) + "…"
}
