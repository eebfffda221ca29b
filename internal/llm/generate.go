package llm

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// StructuredRequest describes one structured-generation use case: a primary
// prompt, a stricter repair prompt reusing the same contextual data, and a
// parse step that fills the caller's typed result.
type StructuredRequest struct {
	System       string
	Prompt       string
	RepairPrompt string
	MaxTokens    int
	Temperature  float32
	Parse        func(raw string) error
}

// GenerateStructured runs a completion and parses the response, repairing at
// most once. The repair attempt resends the contextual data with stricter
// formatting instructions at temperature zero. Two failed attempts surface a
// validation error to the caller; unbounded retries against a metered API
// are a cost and latency hazard. Backend errors are never retried.
func GenerateStructured(ctx context.Context, c Completer, req StructuredRequest) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: req.System},
		{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
	}

	raw, err := c.Complete(ctx, messages, req.MaxTokens, req.Temperature)
	if err != nil {
		return "", err
	}
	if err := req.Parse(raw); err == nil {
		return raw, nil
	}

	messages[1].Content = req.RepairPrompt
	raw, err = c.Complete(ctx, messages, req.MaxTokens, 0)
	if err != nil {
		return "", err
	}
	if err := req.Parse(raw); err != nil {
		return "", fmt.Errorf("generation failed validation: %w", err)
	}
	return raw, nil
}
