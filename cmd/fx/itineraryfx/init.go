package itineraryfx

import (
	"go.uber.org/fx"
	"log"
	"os"
	"weekendwish/internal/services"
	"weekendwish/pkg/utils"
)

var Module = fx.Provide(
	provideTextClient,
	provideItineraryService,
)

// provideTextClient builds the configured language-model client; a nil
// client keeps the service on its deterministic local fallback.
func provideTextClient() utils.TextClientInterface {
	provider := os.Getenv("AI_PROVIDER")
	if provider == "" {
		provider = "gemini"
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	model := os.Getenv("GEMINI_MODEL")
	if provider == "openai" {
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = os.Getenv("OPENAI_MODEL")
	}

	if apiKey == "" {
		log.Println("No AI API key configured, itinerary text uses the local fallback")
		return nil
	}

	client, err := utils.NewTextClient(provider, apiKey, model)
	if err != nil {
		log.Printf("Could not create %s client, using local fallback: %v", provider, err)
		return nil
	}
	return client
}

func provideItineraryService(textClient utils.TextClientInterface) services.ItineraryServiceInterface {
	return services.NewItineraryService(textClient)
}
