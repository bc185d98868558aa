// Package llm wraps the completion API used by the assistant.
package llm

import (
	"context"
	"errors"
	"strings"

	"taskboard/internal/assistant"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	maxTokens   = 600
	temperature = 0.7
)

// Client calls an OpenAI-compatible chat completion endpoint.
type Client struct {
	api   openai.Client
	model string
}

func NewClient(apiKey, model string) *Client {
	return &Client{
		api:   openai.NewClient(option.WithAPIKey(apiKey)),
		model: model,
	}
}

// Complete submits the ordered message sequence and returns the completion
// text. Transport, quota and validation failures surface as errors; the
// caller maps them to an upstream failure.
func (c *Client) Complete(ctx context.Context, msgs []assistant.ChatMessage) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.model),
		Messages:    make([]openai.ChatCompletionMessageParamUnion, 0, len(msgs)),
		MaxTokens:   openai.Int(maxTokens),
		Temperature: openai.Float(temperature),
	}

	for _, m := range msgs {
		switch m.Role {
		case "system":
			params.Messages = append(params.Messages, openai.SystemMessage(m.Content))
		case "assistant":
			params.Messages = append(params.Messages, openai.AssistantMessage(m.Content))
		default:
			params.Messages = append(params.Messages, openai.UserMessage(m.Content))
		}
	}

	resp, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
