package utils

import (
	"context"
	"fmt"
	"strings"
)

// TextClientInterface is the single capability the itinerary service needs
// from a language-model provider. Shape detection and response cleanup stay
// inside the adapters.
type TextClientInterface interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// NewTextClient builds a provider-specific text client.
func NewTextClient(provider, apiKey, model string) (TextClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAITextClient(apiKey, model), nil
	case "gemini":
		return NewGeminiTextClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

// cleanTextResponse strips markdown fences and boilerplate prefixes that
// LLMs tend to wrap plain-text answers in.
func cleanTextResponse(response string) string {
	response = strings.ReplaceAll(response, "```text", "")
	response = strings.ReplaceAll(response, "```", "")

	prefixes := []string{
		"Here's the itinerary:",
		"Here is the itinerary:",
		"Here is your itinerary:",
		"Itinerary:",
	}
	trimmed := strings.TrimSpace(response)
	for _, prefix := range prefixes {
		if strings.HasPrefix(trimmed, prefix) {
			trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, prefix))
			break
		}
	}

	return trimmed
}
