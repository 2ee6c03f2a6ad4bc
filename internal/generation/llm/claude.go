// Package llm wraps the external text-generation service behind a small
// interface so the orchestrator can be tested without network access.
package llm

import (
	"context"
	"sync"

	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino/schema"

	"github.com/uxrlab/uxr-backend/config"
	"github.com/uxrlab/uxr-backend/internal/apperr"
)

// placeholderKey is the value shipped in .env.example; treating it as unset
// turns a copy-paste miss into a clear configuration error.
const placeholderKey = "your_api_key_here"

// Client sends one prompt per call and returns the generated text. No
// batching, no streaming, no retries.
type Client interface {
	// Configured fails with ApiConfigurationError when the credential is
	// missing, so callers can fail fast before doing any work.
	Configured() error
	Generate(ctx context.Context, prompt string) (string, error)
}

// ClaudeClient is the eino-backed Client implementation. The chat model is
// built lazily on first use so the server can start without a credential.
type ClaudeClient struct {
	cfg config.ClaudeConfig

	mu    sync.Mutex
	model *claude.ChatModel
}

func NewClaude(cfg config.ClaudeConfig) *ClaudeClient {
	return &ClaudeClient{cfg: cfg}
}

func (c *ClaudeClient) Configured() error {
	if c.cfg.APIKey == "" || c.cfg.APIKey == placeholderKey {
		return apperr.New(apperr.CodeApiConfigurationError, "Claude API key not configured. Please set ANTHROPIC_API_KEY in your environment variables")
	}
	return nil
}

func (c *ClaudeClient) chatModel(ctx context.Context) (*claude.ChatModel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.model != nil {
		return c.model, nil
	}

	model, err := claude.NewChatModel(ctx, &claude.Config{
		APIKey:    c.cfg.APIKey,
		Model:     c.cfg.Model,
		MaxTokens: c.cfg.MaxTokens,
	})
	if err != nil {
		return nil, err
	}
	c.model = model
	return model, nil
}

func (c *ClaudeClient) Generate(ctx context.Context, prompt string) (string, error) {
	if err := c.Configured(); err != nil {
		return "", err
	}

	model, err := c.chatModel(ctx)
	if err != nil {
		return "", apperr.Wrap(apperr.CodeGenerationFailed, "Claude API Error", err)
	}

	msg, err := model.Generate(ctx, []*schema.Message{schema.UserMessage(prompt)})
	if err != nil {
		return "", apperr.Wrap(apperr.CodeGenerationFailed, "Claude API Error", err)
	}

	return textOf(msg)
}

// textOf extracts the first text-bearing segment of a model response.
func textOf(msg *schema.Message) (string, error) {
	if msg == nil {
		return "", apperr.New(apperr.CodeEmptyResponse, "No content in Claude API response")
	}
	if msg.Content != "" {
		return msg.Content, nil
	}
	if len(msg.MultiContent) == 0 {
		return "", apperr.New(apperr.CodeEmptyResponse, "No content in Claude API response")
	}
	first := msg.MultiContent[0]
	if first.Type != schema.ChatMessagePartTypeText {
		return "", apperr.New(apperr.CodeUnexpectedResponseShape, "Unexpected response format from Claude API")
	}
	return first.Text, nil
}
