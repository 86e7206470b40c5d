package response_models

import "weekendwish/internal/models/domain_models"

type RankedPlace struct {
	ID         string   `json:"id,omitempty"`
	Name       string   `json:"name"`
	Address    string   `json:"address,omitempty"`
	Lat        *float64 `json:"lat"`
	Lon        *float64 `json:"lon"`
	PriceTier  *float64 `json:"price_tier,omitempty"`
	Popularity float64  `json:"popularity"`
	Score      float64  `json:"score"`
	DistanceM  *float64 `json:"distance_m"`
}

type StartCoords struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type RecommendResponse struct {
	StartCoords     StartCoords   `json:"start_coords"`
	BudgetPerPerson float64       `json:"budget_per_person"`
	Source          string        `json:"source"`
	Results         []RankedPlace `json:"results"`
}

func BuildRankedPlace(p domain_models.RankedPlace) RankedPlace {
	return RankedPlace{
		ID:         p.ID,
		Name:       p.Name,
		Address:    p.Address,
		Lat:        p.Latitude,
		Lon:        p.Longitude,
		PriceTier:  p.PriceTier,
		Popularity: p.PopularityValue(),
		Score:      p.Score,
		DistanceM:  p.DistanceM,
	}
}
