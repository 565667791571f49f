// Package ai wraps the Anthropic Messages API behind a small completion
// interface so services never touch the SDK directly.
package ai

import (
	"context"
	"fmt"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/finchat/finchat-backend/internal/config"
)

// Client sends single-turn completion requests to Claude.
type Client struct {
	api       anthropic.Client
	model     anthropic.Model
	maxTokens int64
	timeout   time.Duration
}

// New creates a Client from AI configuration.
func New(cfg config.AIConfig) *Client {
	return &Client{
		api:       anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:     anthropic.Model(cfg.Model),
		maxTokens: int64(cfg.MaxTokens),
		timeout:   cfg.RequestTimeout,
	}
}

// Complete sends one user message with a system prompt and returns the
// model's text response. The call is bounded by the configured request
// timeout on top of whatever deadline ctx already carries.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("messages api call: %w", err)
	}

	if len(msg.Content) == 0 {
		return "", fmt.Errorf("empty model response")
	}

	return msg.Content[0].Text, nil
}
