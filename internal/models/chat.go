package models

// Chat message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is a single message in a conversation session.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
