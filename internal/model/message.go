package model

// Role 消息角色
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// IsHistoryRole 客户端历史中只允许 user / assistant
func (r Role) IsHistoryRole() bool {
	return r == RoleUser || r == RoleAssistant
}

// ChatTurn 一条对话消息，创建后不再修改
type ChatTurn struct {
	Role    Role   `json:"role" example:"user"`
	Content string `json:"content" example:"Tell me about CelestAI"`
}
