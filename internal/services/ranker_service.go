package services

import (
	"context"
	"log"
	"math"
	"sort"
	"strings"
	"weekendwish/internal/models/domain_models"
	"weekendwish/pkg/utils"
)

const (
	// Imputed price tier for offline records with no price column.
	offlineDefaultPriceTier = 2

	DefaultTopN = 12
	MaxTopN     = 80
)

type RankerServiceInterface interface {
	Rank(ctx context.Context, center domain_models.Coordinates, radiusM float64, budgetPerPerson float64, categoryFilter string, source domain_models.PlaceSource, topN int) ([]domain_models.RankedPlace, error)
}

type RankerService struct{}

func NewRankerService() RankerServiceInterface {
	return &RankerService{}
}

// Rank fetches candidates from the source and runs the filter/score/sort
// pipeline. Derived fields are computed fresh on every call; nothing is
// cached between requests.
func (r *RankerService) Rank(
	ctx context.Context,
	center domain_models.Coordinates,
	radiusM float64,
	budgetPerPerson float64,
	categoryFilter string,
	source domain_models.PlaceSource,
	topN int,
) ([]domain_models.RankedPlace, error) {

	if topN <= 0 {
		topN = DefaultTopN
	}
	if topN > MaxTopN {
		topN = MaxTopN
	}

	// Fetch more than we keep so the filters have something to drop.
	fetchLimit := topN
	if fetchLimit < 40 {
		fetchLimit = 40
	}

	candidates, err := source.FetchPlaces(ctx, center, radiusM, fetchLimit)
	if err != nil {
		log.Printf("Error fetching places from %s source: %v", source.Kind(), err)
		return nil, utils.ErrSourceUnavailable
	}

	offline := source.Kind() != domain_models.SourceOnline
	maxTier := MaxTierForBudget(budgetPerPerson)

	ranked := make([]domain_models.RankedPlace, 0, len(candidates))
	for _, candidate := range candidates {
		distance := distanceFrom(center, candidate)

		// The online source already applied the radius upstream; the
		// offline sources filter locally, dropping records whose
		// distance is over the radius or cannot be computed at all.
		if offline {
			if distance == nil || *distance > radiusM {
				continue
			}
		}

		if !MatchesCategory(candidate, categoryFilter) {
			continue
		}

		if !withinBudget(candidate, maxTier, offline) {
			continue
		}

		ranked = append(ranked, domain_models.RankedPlace{
			Place:     candidate,
			Score:     PopularityScore(candidate.PopularityValue()),
			DistanceM: distance,
		})
	}

	// Stable: equal scores keep the source's own relevance order.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	return ranked, nil
}

// PopularityScore is p * ln(1+p); zero for absent popularity.
func PopularityScore(popularity float64) float64 {
	return popularity * math.Log1p(popularity)
}

// MaxTierForBudget maps a per-person budget onto the highest allowed price
// tier.
func MaxTierForBudget(budgetPerPerson float64) int {
	switch {
	case budgetPerPerson < 200:
		return 1
	case budgetPerPerson < 500:
		return 2
	case budgetPerPerson < 1200:
		return 3
	default:
		return 4
	}
}

// MatchesCategory reports whether the place passes the category filter.
// "any" and the empty string pass everything; a place whose tag records
// could not be parsed passes as well.
func MatchesCategory(place domain_models.Place, filter string) bool {
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" || filter == "any" {
		return true
	}

	if place.UnparsedTags {
		return true
	}

	for _, tag := range place.Tags {
		if strings.Contains(strings.ToLower(tag), filter) {
			return true
		}
	}
	if strings.Contains(strings.ToLower(place.FreeText), filter) {
		return true
	}
	return strings.Contains(strings.ToLower(place.Name), filter)
}

func withinBudget(place domain_models.Place, maxTier int, offline bool) bool {
	tier := place.PriceTier
	if tier == nil {
		if !offline {
			// The online path skips the check entirely when price
			// is absent.
			return true
		}
		imputed := float64(offlineDefaultPriceTier)
		tier = &imputed
	}
	return *tier <= float64(maxTier)
}

func distanceFrom(center domain_models.Coordinates, place domain_models.Place) *float64 {
	coords, ok := place.Coords()
	if !ok {
		return nil
	}
	d := utils.HaversineMeters(center.Lat, center.Lon, coords.Lat, coords.Lon)
	return &d
}
