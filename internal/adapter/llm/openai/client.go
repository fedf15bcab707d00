// Package openai implements llm.Generator on the OpenAI chat completions API.
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/deltahq/delta/internal/adapter/llm"
)

// Client generates text with a chat completion model.
type Client struct {
	client openai.Client
	model  string
}

// New creates a Client. baseURL may be empty.
func New(apiKey, baseURL, model string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("openai: api key missing")
	}
	if model == "" {
		return nil, errors.New("openai: model is required")
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	// Exactly one upstream attempt per Generate.
	opts = append(opts, option.WithMaxRetries(0))

	return &Client{client: openai.NewClient(opts...), model: model}, nil
}

// Generate sends the prompt as a system + user message pair.
func (c *Client) Generate(ctx context.Context, p llm.Prompt) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(p.System),
			openai.UserMessage(p.User),
		},
		Temperature: openai.Float(p.Temperature),
	}
	if p.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(p.MaxTokens))
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", llm.ErrEmptyCompletion
	}

	text := resp.Choices[0].Message.Content
	if strings.TrimSpace(text) == "" {
		return "", llm.ErrEmptyCompletion
	}
	return text, nil
}
