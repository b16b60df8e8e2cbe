package model

import "encoding/json"

// ChatRequest 对话请求 (POST /api/chat)
// Message 保留原始 JSON，由中继层判断缺失/类型错误
type ChatRequest struct {
	Message json.RawMessage `json:"message" swaggertype:"string" example:"What are your skills?"`
	History []ChatTurn      `json:"history,omitempty"`
}

// NewChatRequest 用字符串消息构造请求 (CLI 与测试使用)
func NewChatRequest(message string, history ...ChatTurn) *ChatRequest {
	raw, _ := json.Marshal(message)
	return &ChatRequest{Message: raw, History: history}
}
