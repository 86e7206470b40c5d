package services

import (
	"context"
	"log"
	"weekendwish/internal/models/domain_models"
	"weekendwish/internal/models/request_models"
	"weekendwish/internal/models/response_models"
	"weekendwish/pkg/utils"
)

const defaultRadiusM = 8000

type RecommendServiceInterface interface {
	Recommend(ctx context.Context, req request_models.RecommendRequest) (*response_models.RecommendResponse, error)
}

type RecommendService struct {
	geocoder GeocodeServiceInterface
	ranker   RankerServiceInterface
	online   domain_models.PlaceSource
	offline  domain_models.PlaceSource
	database domain_models.PlaceSource
}

func NewRecommendService(
	geocoder GeocodeServiceInterface,
	ranker RankerServiceInterface,
	online domain_models.PlaceSource,
	offline domain_models.PlaceSource,
	database domain_models.PlaceSource,
) RecommendServiceInterface {
	return &RecommendService{
		geocoder: geocoder,
		ranker:   ranker,
		online:   online,
		offline:  offline,
		database: database,
	}
}

// Recommend resolves the start location, picks a source per the request and
// runs the ranker. The "auto" source tries online first and falls back to
// the offline snapshot on failure or an empty result; the ranker itself
// never retries.
func (s *RecommendService) Recommend(ctx context.Context, req request_models.RecommendRequest) (*response_models.RecommendResponse, error) {
	if req.Start == "" {
		return nil, utils.ErrInvalidInput
	}

	center, err := s.resolveStart(ctx, req.Start)
	if err != nil {
		return nil, err
	}

	people := req.People
	if people < 1 {
		people = 1
	}
	budgetPerPerson := req.Budget / float64(people)

	radius := req.RadiusM
	if radius <= 0 {
		radius = defaultRadiusM
	}

	ranked, sourceKind, err := s.rankFromSource(ctx, req.Source, center, radius, budgetPerPerson, req.Category, req.Limit)
	if err != nil {
		return nil, err
	}

	results := make([]response_models.RankedPlace, 0, len(ranked))
	for _, place := range ranked {
		results = append(results, response_models.BuildRankedPlace(place))
	}

	return &response_models.RecommendResponse{
		StartCoords:     response_models.StartCoords{Lat: center.Lat, Lon: center.Lon},
		BudgetPerPerson: budgetPerPerson,
		Source:          string(sourceKind),
		Results:         results,
	}, nil
}

// resolveStart parses a "lat,lng" string locally and only calls the
// geocoder for free-text addresses.
func (s *RecommendService) resolveStart(ctx context.Context, start string) (domain_models.Coordinates, error) {
	if lat, lon := utils.ParseLatLng(start); lat != nil && lon != nil {
		return domain_models.Coordinates{Lat: *lat, Lon: *lon}, nil
	}
	return s.geocoder.Geocode(ctx, start)
}

func (s *RecommendService) rankFromSource(
	ctx context.Context,
	sourceName string,
	center domain_models.Coordinates,
	radiusM, budgetPerPerson float64,
	category string,
	limit int,
) ([]domain_models.RankedPlace, domain_models.SourceKind, error) {

	switch sourceName {
	case "online":
		ranked, err := s.ranker.Rank(ctx, center, radiusM, budgetPerPerson, category, s.online, limit)
		return ranked, domain_models.SourceOnline, err
	case "offline":
		ranked, err := s.ranker.Rank(ctx, center, radiusM, budgetPerPerson, category, s.offline, limit)
		return ranked, domain_models.SourceOffline, err
	case "database":
		ranked, err := s.ranker.Rank(ctx, center, radiusM, budgetPerPerson, category, s.database, limit)
		return ranked, domain_models.SourceDatabase, err
	case "", "auto":
		ranked, err := s.ranker.Rank(ctx, center, radiusM, budgetPerPerson, category, s.online, limit)
		if err == nil && len(ranked) > 0 {
			return ranked, domain_models.SourceOnline, nil
		}
		if err != nil {
			log.Printf("Online search failed, falling back to offline: %v", err)
		}
		ranked, err = s.ranker.Rank(ctx, center, radiusM, budgetPerPerson, category, s.offline, limit)
		return ranked, domain_models.SourceOffline, err
	default:
		return nil, "", utils.ErrInvalidInput
	}
}
