package service

import "fmt"

// 面向用户的错误文案，前端会原样展示在对话气泡中
const (
	MsgNotConfigured  = "The chat service is not configured. Please try again later."
	MsgMessageMissing = "Message is required."
	MsgMessageTooLong = "Message is too long."
	MsgInvalidHistory = "History contains an invalid message."
	MsgInvalidBody    = "Invalid request body."
	MsgUnreachable    = "Could not reach the chat service. Please try again later."
	MsgUpstreamFailed = "Failed to get a response from the chat service."
	MsgBadFormat      = "Unexpected response format from the chat service."
)

// RelayError 中继失败结果：终态、HTTP 状态码和面向用户的文案
// Err 仅用于日志，不返回给客户端
type RelayError struct {
	State   State
	Status  int
	Message string
	Err     error
}

func newRelayError(state State, status int, message string, err error) *RelayError {
	return &RelayError{State: state, Status: status, Message: message, Err: err}
}

func (e *RelayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("chat relay %s (%d): %s: %v", e.State, e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("chat relay %s (%d): %s", e.State, e.Status, e.Message)
}

func (e *RelayError) Unwrap() error {
	return e.Err
}
