package http

// ErrorResponse 错误响应（所有API共用）
// error 字段会原样展示给终端用户，只能放面向用户的文案
type ErrorResponse struct {
	Error string `json:"error" example:"Message is required."`
}

// StatusResponse 健康检查响应
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// NewErrorResponse 创建错误响应
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Error: message}
}
