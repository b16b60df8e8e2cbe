package ai

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse 上游返回 2xx，但响应体无法使用
var ErrMalformedResponse = errors.New("malformed completion response")

// TransportError 无法完成与上游的网络往返 (DNS、连接被拒、超时、取消)
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("upstream transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UpstreamError 上游可达，但返回了非 2xx 状态
// Message 为上游自带的错误信息，可能为空
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream rejected request with status %d", e.StatusCode)
	}
	return fmt.Sprintf("upstream rejected request with status %d: %s", e.StatusCode, e.Message)
}
