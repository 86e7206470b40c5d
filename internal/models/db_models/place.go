package db_models

import "weekendwish/internal/models/domain_models"

// Place is the persistent row behind the database source. Coordinates are
// mandatory here; popularity and price stay nullable so the ranker's
// absent-field defaults keep applying.
type Place struct {
	BaseModel
	Name       string
	Address    string
	Latitude   float64
	Longitude  float64
	Popularity *float64
	PriceTier  *float64
	Category   string
	Tags       string
}

// ToDomain converts the row into the canonical candidate record.
func (p *Place) ToDomain() domain_models.Place {
	lat := p.Latitude
	lon := p.Longitude

	freeText := p.Category
	if p.Tags != "" {
		freeText = freeText + " " + p.Tags
	}

	return domain_models.Place{
		ID:         p.ID.String(),
		Name:       p.Name,
		Address:    p.Address,
		Latitude:   &lat,
		Longitude:  &lon,
		Popularity: p.Popularity,
		PriceTier:  p.PriceTier,
		FreeText:   freeText,
	}
}
