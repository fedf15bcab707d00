// Package anthropic implements llm.Generator on the Anthropic Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/deltahq/delta/internal/adapter/llm"
)

// Client generates text with a Claude model.
type Client struct {
	client anthropic.Client
	model  string
}

// New creates a Client. baseURL may be empty.
func New(apiKey, baseURL, model string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("anthropic: api key missing")
	}
	if model == "" {
		return nil, errors.New("anthropic: model is required")
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey), option.WithMaxRetries(0)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &Client{client: anthropic.NewClient(opts...), model: model}, nil
}

// Generate sends the prompt as a single user turn with a system instruction.
func (c *Client) Generate(ctx context.Context, p llm.Prompt) (string, error) {
	maxTokens := int64(p.MaxTokens)
	if maxTokens <= 0 {
		maxTokens = 4000
	}

	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   maxTokens,
		System:      []anthropic.TextBlockParam{{Text: p.System}},
		Temperature: anthropic.Float(p.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(p.User)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic: messages: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", llm.ErrEmptyCompletion
	}
	return sb.String(), nil
}
