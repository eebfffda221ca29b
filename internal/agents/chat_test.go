package agents

import (
	"context"
	"fmt"
	"testing"

	"cpace/internal/models"
	"cpace/internal/session"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatAgent_Reply_AppendsBothMessages(t *testing.T) {
	stub := &stubCompleter{responses: []string{"C-PACE stands for Commercial Property Assessed Clean Energy."}}
	store := session.New()
	agent := NewChatAgent(stub, "chat skills", store)

	reply, err := agent.Reply(context.Background(), "s1", "What is C-PACE?")
	require.NoError(t, err)
	assert.Equal(t, "C-PACE stands for Commercial Property Assessed Clean Energy.", reply)

	history := store.History("s1")
	require.Len(t, history, 2)
	assert.Equal(t, models.ChatMessage{Role: models.RoleUser, Content: "What is C-PACE?"}, history[0])
	assert.Equal(t, models.ChatMessage{Role: models.RoleAssistant, Content: reply}, history[1])

	require.Len(t, stub.calls, 1)
	assert.Equal(t, float32(0.6), stub.calls[0].temperature)
	assert.Equal(t, 1024, stub.calls[0].maxTokens)
}

func TestChatAgent_Reply_SendsSystemHistoryThenUser(t *testing.T) {
	stub := &stubCompleter{responses: []string{"first", "second"}}
	store := session.New()
	agent := NewChatAgent(stub, "chat skills", store)

	_, err := agent.Reply(context.Background(), "s1", "hello")
	require.NoError(t, err)
	_, err = agent.Reply(context.Background(), "s1", "tell me more")
	require.NoError(t, err)

	require.Len(t, stub.calls, 2)
	messages := stub.calls[1].messages
	require.Len(t, messages, 4)
	assert.Equal(t, openai.ChatMessageRoleSystem, messages[0].Role)
	assert.Equal(t, "chat skills", messages[0].Content)
	assert.Equal(t, openai.ChatMessageRoleUser, messages[1].Role)
	assert.Equal(t, "hello", messages[1].Content)
	assert.Equal(t, openai.ChatMessageRoleAssistant, messages[2].Role)
	assert.Equal(t, "first", messages[2].Content)
	assert.Equal(t, openai.ChatMessageRoleUser, messages[3].Role)
	assert.Equal(t, "tell me more", messages[3].Content)
}

func TestChatAgent_Reply_BackendErrorLeavesHistoryUntouched(t *testing.T) {
	stub := &stubCompleter{err: fmt.Errorf("completion request failed: 503")}
	store := session.New()
	agent := NewChatAgent(stub, "chat skills", store)

	_, err := agent.Reply(context.Background(), "s1", "hello")
	require.Error(t, err)
	assert.Empty(t, store.History("s1"))
}

func TestChatAgent_Reply_SessionsAreIsolated(t *testing.T) {
	stub := &stubCompleter{responses: []string{"a", "b"}}
	store := session.New()
	agent := NewChatAgent(stub, "chat skills", store)

	_, err := agent.Reply(context.Background(), "s1", "first session")
	require.NoError(t, err)
	_, err = agent.Reply(context.Background(), "s2", "second session")
	require.NoError(t, err)

	// Second session's completion carries no history from the first.
	require.Len(t, stub.calls[1].messages, 2)
	assert.Len(t, store.History("s1"), 2)
	assert.Len(t, store.History("s2"), 2)
}
