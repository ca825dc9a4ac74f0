package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ErrNoCredential is returned without attempting a network call when the
// provider API key is absent.
var ErrNoCredential = errors.New("completion: missing API key")

// CompletionClientInterface is the generative fallback boundary: one
// request/response, no streaming, no retries.
type CompletionClientInterface interface {
	Complete(ctx context.Context, systemPrompt, userText string) (string, error)
}

// Sampling is fixed so the assistant's tone stays consistent across turns.
const (
	completionTemperature = 0.7
	openAIMaxTokens       = 150
)

type OpenAICompletionClient struct {
	client *openai.Client
	model  string
	hasKey bool
}

func NewOpenAICompletionClient(apiKey, model string) *OpenAICompletionClient {
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	return &OpenAICompletionClient{
		client: openai.NewClient(apiKey),
		model:  model,
		hasKey: apiKey != "",
	}
}

func (c *OpenAICompletionClient) Complete(ctx context.Context, systemPrompt, userText string) (string, error) {
	if !c.hasKey {
		return "", ErrNoCredential
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userText},
		},
		Temperature: completionTemperature,
		MaxTokens:   openAIMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty completion")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// NewCompletionClient creates either an OpenAI or Gemini client based on config.
func NewCompletionClient(provider, apiKey, model string) (CompletionClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAICompletionClient(apiKey, model), nil
	case "gemini":
		return NewGeminiCompletionClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported completion provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
