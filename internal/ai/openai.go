package ai

import (
    "context"
    "errors"

    "github.com/openai/openai-go"
    "github.com/openai/openai-go/option"
)

var ErrInvalidAPIKey = errors.New("openai api key is required")

const systemPrompt = "You write short, warm confirmation emails for a marketing team. Plain text only, no subject line, no markdown."

// CompletionClient is the slice of the OpenAI API the confirmation
// service depends on. It returns the raw completion so the caller owns
// choice extraction and fallback behavior.
type CompletionClient interface {
    CreateCompletion(ctx context.Context, prompt string) (*openai.ChatCompletion, error)
}

// Client wraps the OpenAI chat completions API.
type Client struct {
    client openai.Client
    model  string
}

func NewClient(apiKey, model string) (*Client, error) {
    if apiKey == "" {
        return nil, ErrInvalidAPIKey
    }
    return &Client{
        client: openai.NewClient(option.WithAPIKey(apiKey)),
        model:  model,
    }, nil
}

func (c *Client) CreateCompletion(ctx context.Context, prompt string) (*openai.ChatCompletion, error) {
    return c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
        Model: openai.ChatModel(c.model),
        Messages: []openai.ChatCompletionMessageParamUnion{
            openai.SystemMessage(systemPrompt),
            openai.UserMessage(prompt),
        },
    })
}

var _ CompletionClient = (*Client)(nil)
