package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiMaxOutputTokens = 250

// GeminiCompletionClient implements CompletionClientInterface using Google's
// Gemini models.
type GeminiCompletionClient struct {
	client *genai.Client
	model  string
}

func NewGeminiCompletionClient(apiKey, model string) (*GeminiCompletionClient, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	if apiKey == "" {
		// Construction still succeeds; Complete short-circuits, same as the
		// OpenAI client with an empty key.
		return &GeminiCompletionClient{model: model}, nil
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiCompletionClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiCompletionClient) Complete(ctx context.Context, systemPrompt, userText string) (string, error) {
	if c.client == nil {
		return "", ErrNoCredential
	}

	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(completionTemperature)
	m.SetMaxOutputTokens(geminiMaxOutputTokens)

	prompt := fmt.Sprintf("%s\n\nUser Question: %s\n\nYour Response (2-3 sentences max):", systemPrompt, userText)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content")
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	return strings.TrimSpace(content), nil
}

// Close closes the Gemini client.
func (c *GeminiCompletionClient) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}
