package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"weekendwish/internal/models/domain_models"
	"weekendwish/pkg/utils"
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, stops []domain_models.RouteStop, budgetTotal float64, people int) string
}

type ItineraryService struct {
	textClient utils.TextClientInterface
}

func NewItineraryService(textClient utils.TextClientInterface) ItineraryServiceInterface {
	return &ItineraryService{
		textClient: textClient,
	}
}

// GenerateItinerary asks the language model for a narrative itinerary and
// falls back to a deterministic local rendering whenever the model is
// unavailable or returns nothing usable.
func (s *ItineraryService) GenerateItinerary(ctx context.Context, stops []domain_models.RouteStop, budgetTotal float64, people int) string {
	if len(stops) == 0 {
		return ""
	}

	if s.textClient != nil {
		text, err := s.textClient.GenerateText(ctx, buildItineraryPrompt(stops, budgetTotal, people))
		if err == nil && strings.TrimSpace(text) != "" {
			return text
		}
		if err != nil {
			log.Printf("Itinerary generation failed, using local fallback: %v", err)
		}
	}

	return localItinerary(stops, budgetTotal, people)
}

func buildItineraryPrompt(stops []domain_models.RouteStop, budgetTotal float64, people int) string {
	var b strings.Builder

	b.WriteString("Write a short, friendly one-day itinerary for the visiting order below.\n")
	b.WriteString("Keep the given order and times; do not invent extra stops.\n")
	fmt.Fprintf(&b, "Group size: %d, total budget: %.0f.\n\nStops:\n", people, budgetTotal)

	for i, stop := range stops {
		fmt.Fprintf(&b, "%d. %s (%s-%s)", i+1, stop.Name,
			utils.FormatClock(stop.Arrival), utils.FormatClock(stop.Departure))
		if stop.Address != "" {
			fmt.Fprintf(&b, " — %s", stop.Address)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nReturn plain text only. No markdown, no preamble.")
	return b.String()
}

// localItinerary is the deterministic fallback: the ordered stops with
// their schedule, rendered as plain text.
func localItinerary(stops []domain_models.RouteStop, budgetTotal float64, people int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Your day plan (%d people, budget %.0f):\n", people, budgetTotal)
	for i, stop := range stops {
		fmt.Fprintf(&b, "%d. %s — arrive %s, leave %s",
			i+1, stop.Name, utils.FormatClock(stop.Arrival), utils.FormatClock(stop.Departure))
		if i > 0 {
			fmt.Fprintf(&b, " (%d min travel, %.1f km)",
				stop.TravelMinutes, stop.LegDistanceM/1000)
		}
		b.WriteString("\n")
	}

	return b.String()
}
