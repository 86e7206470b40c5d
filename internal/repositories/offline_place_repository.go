package repositories

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"weekendwish/internal/models/domain_models"
)

// OfflinePlaceRepository serves candidates from a flat CSV snapshot. It
// re-reads the file on every call: the snapshot is the source of truth and
// nothing derived is cached between requests.
type OfflinePlaceRepository struct {
	Path string
}

func NewOfflinePlaceRepository() *OfflinePlaceRepository {
	path := os.Getenv("OFFLINE_CSV_PATH")
	if path == "" {
		path = "places.csv"
	}
	return &OfflinePlaceRepository{Path: path}
}

func (r *OfflinePlaceRepository) Kind() domain_models.SourceKind {
	return domain_models.SourceOffline
}

func (r *OfflinePlaceRepository) FetchPlaces(ctx context.Context, center domain_models.Coordinates, radiusM float64, limit int) ([]domain_models.Place, error) {
	file, err := os.Open(r.Path)
	if err != nil {
		return nil, fmt.Errorf("offline snapshot: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("offline snapshot read: %w", err)
	}
	if len(records) == 0 {
		return []domain_models.Place{}, nil
	}

	cols := columnIndex(records[0])
	if cols["lat"] < 0 || cols["lon"] < 0 {
		return nil, fmt.Errorf("offline snapshot missing lat/lon columns")
	}

	places := make([]domain_models.Place, 0, len(records)-1)
	for _, record := range records[1:] {
		places = append(places, rowToPlace(record, cols))
	}
	return places, nil
}

// columnIndex maps the columns this source understands onto their header
// positions; -1 marks an absent column. price falls back to price_tier's
// slot and tags to category's, matching the snapshot variants in the wild.
func columnIndex(header []string) map[string]int {
	cols := map[string]int{
		"name": -1, "address": -1, "lat": -1, "lon": -1,
		"popularity": -1, "price": -1, "category": -1,
	}

	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "name":
			cols["name"] = i
		case "address":
			cols["address"] = i
		case "lat", "latitude":
			cols["lat"] = i
		case "lon", "lng", "longitude":
			cols["lon"] = i
		case "popularity":
			cols["popularity"] = i
		case "price_tier", "price":
			if cols["price"] < 0 {
				cols["price"] = i
			}
		case "category", "tags":
			if cols["category"] < 0 {
				cols["category"] = i
			}
		}
	}

	return cols
}

func rowToPlace(record []string, cols map[string]int) domain_models.Place {
	place := domain_models.Place{
		Name:    field(record, cols["name"]),
		Address: field(record, cols["address"]),
	}

	place.Latitude = numericField(record, cols["lat"])
	place.Longitude = numericField(record, cols["lon"])
	place.Popularity = numericField(record, cols["popularity"])
	place.PriceTier = numericField(record, cols["price"])
	place.FreeText = field(record, cols["category"])

	return place
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// numericField returns nil for absent or non-numeric cells so the ranker's
// zero-default and imputation policies apply downstream.
func numericField(record []string, idx int) *float64 {
	raw := field(record, idx)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
