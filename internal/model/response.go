package model

// ChatResponse 对话成功响应
type ChatResponse struct {
	Response string `json:"response" example:"Dikshant works mostly with Python, Java and ML."`
}
