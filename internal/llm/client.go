// Package llm wraps the chat-completion backend and the structured-output
// handling shared by the analysis and email agents: JSON extraction, schema
// validation, and the single repair attempt on shape failure.
package llm

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"cpace/internal/config"

	"github.com/sashabaranov/go-openai"
)

// Completer issues one completion request per call. One call = one
// request/response; retries are the orchestrator's concern, not the client's.
type Completer interface {
	Complete(ctx context.Context, messages []openai.ChatCompletionMessage, maxTokens int, temperature float32) (string, error)
}

// Client is an OpenAI-compatible completion client pointed at the Hugging
// Face router.
type Client struct {
	api     *openai.Client
	model   string
	timeout time.Duration
}

// NewClient creates a completion client from configuration.
func NewClient(cfg *config.Config) *Client {
	clientConfig := openai.DefaultConfig(cfg.HFAPIToken)
	clientConfig.BaseURL = cfg.HFBaseURL

	return &Client{
		api:     openai.NewClientWithConfig(clientConfig),
		model:   cfg.HFModel,
		timeout: time.Duration(cfg.LLMTimeout) * time.Second,
	}
}

// Complete sends one chat completion request and returns the first choice's
// content with surrounding whitespace trimmed.
func (c *Client) Complete(ctx context.Context, messages []openai.ChatCompletionMessage, maxTokens int, temperature float32) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	// go-openai omits a zero temperature from the request body, which would
	// leave the backend at its default; the smallest nonzero float pins the
	// repair attempt to deterministic sampling.
	if temperature == 0 {
		temperature = math.SmallestNonzeroFloat32
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion backend returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Model returns the configured model id.
func (c *Client) Model() string {
	return c.model
}
