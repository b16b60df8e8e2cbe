package service

// State 对话中继状态
//
//	Received -> Validating -> Forwarding -> Awaiting -> {Success, UpstreamError, TransportError, FormatError} -> Responded
//
// ConfigError 与 ValidationError 在 Validating 之前/之中提前终止
type State string

const (
	StateReceived   State = "received"
	StateValidating State = "validating"
	StateForwarding State = "forwarding"
	StateAwaiting   State = "awaiting"
	StateResponded  State = "responded"

	StateConfigError     State = "config_error"
	StateValidationError State = "validation_error"
	StateSuccess         State = "success"
	StateUpstreamError   State = "upstream_error"
	StateTransportError  State = "transport_error"
	StateFormatError     State = "format_error"
)

// Terminal 是否为终态 (决定响应内容的状态)
func (s State) Terminal() bool {
	switch s {
	case StateConfigError, StateValidationError, StateSuccess,
		StateUpstreamError, StateTransportError, StateFormatError:
		return true
	}
	return false
}
