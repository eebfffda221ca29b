package agents

import (
	"context"

	"cpace/internal/llm"
	"cpace/internal/models"
	"cpace/internal/session"

	"github.com/sashabaranov/go-openai"
)

const (
	chatMaxTokens   = 1024
	chatTemperature = 0.6
)

// ChatAgent answers conversational questions about C-PACE financing. Replies
// are free text with no schema, so there is no repair pass; backend failures
// propagate to the caller.
type ChatAgent struct {
	llm    llm.Completer
	skills string
	store  *session.Store
}

// NewChatAgent creates a chat agent backed by the given session store.
func NewChatAgent(completer llm.Completer, skills string, store *session.Store) *ChatAgent {
	return &ChatAgent{llm: completer, skills: skills, store: store}
}

// Reply sends the session history plus the new user message through one
// completion call, appends both the user message and the reply to the
// session, and returns the reply text. Nothing is appended when the backend
// fails.
func (a *ChatAgent) Reply(ctx context.Context, sessionID, message string) (string, error) {
	history := a.store.History(sessionID)

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: a.skills,
	})
	for _, msg := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	reply, err := a.llm.Complete(ctx, messages, chatMaxTokens, chatTemperature)
	if err != nil {
		return "", err
	}

	a.store.Add(sessionID, models.ChatMessage{Role: models.RoleUser, Content: message})
	a.store.Add(sessionID, models.ChatMessage{Role: models.RoleAssistant, Content: reply})

	return reply, nil
}
