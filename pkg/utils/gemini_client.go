package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiTextClient implements TextClientInterface using Google's Gemini
// models.
type GeminiTextClient struct {
	client *genai.Client
	model  string
}

func NewGeminiTextClient(apiKey, model string) (TextClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiTextClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiTextClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.4)
	m.SetTopP(0.8)
	m.SetTopK(20)
	m.SetMaxOutputTokens(1024)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated by Gemini")
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	return cleanTextResponse(content), nil
}

// Close closes the Gemini client.
func (c *GeminiTextClient) Close() error {
	return c.client.Close()
}
