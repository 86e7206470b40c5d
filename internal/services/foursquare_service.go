package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"
	"weekendwish/internal/models/domain_models"
)

// FoursquareClient is the online place source. The API applies the radius
// cutoff itself, so fetched records are returned without any local radius
// filtering.
type FoursquareClient struct {
	HTTP    *http.Client
	APIKey  string
	BaseURL string
}

func NewFoursquareClient() *FoursquareClient {
	apiKey := os.Getenv("FSQ_API_KEY")
	if apiKey == "" {
		panic("FSQ_API_KEY is empty")
	}
	baseURL := os.Getenv("FSQ_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.foursquare.com"
	}
	return &FoursquareClient{
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		APIKey:  apiKey,
		BaseURL: baseURL,
	}
}

func (c *FoursquareClient) Kind() domain_models.SourceKind {
	return domain_models.SourceOnline
}

// fsqPlace mirrors the wire record. Older responses use fsq_id, newer ones
// fsq_place_id; categories can be plain strings or objects with a name.
type fsqPlace struct {
	FsqPlaceID string            `json:"fsq_place_id"`
	FsqID      string            `json:"fsq_id"`
	AltID      string            `json:"id"`
	Name       string            `json:"name"`
	Price      *float64          `json:"price"`
	Popularity *float64          `json:"popularity"`
	Latitude   *float64          `json:"latitude"`
	Longitude  *float64          `json:"longitude"`
	Geocodes   fsqGeocodes       `json:"geocodes"`
	Location   fsqLocation       `json:"location"`
	Categories []json.RawMessage `json:"categories"`
}

type fsqGeocodes struct {
	Main struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	} `json:"main"`
}

type fsqLocation struct {
	FormattedAddress string `json:"formatted_address"`
	Address          string `json:"address"`
	Locality         string `json:"locality"`
}

func (c *FoursquareClient) FetchPlaces(ctx context.Context, center domain_models.Coordinates, radiusM float64, limit int) ([]domain_models.Place, error) {
	if limit <= 0 {
		limit = 40
	}

	q := url.Values{}
	q.Set("ll", fmt.Sprintf("%f,%f", center.Lat, center.Lon))
	q.Set("radius", strconv.Itoa(int(radiusM)))
	q.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/v3/places/search?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("foursquare request: %w", err)
	}
	req.Header.Set("Authorization", c.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("foursquare http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("foursquare bad status: %s", resp.Status)
	}

	var payload struct {
		Results []fsqPlace `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("foursquare decode: %w", err)
	}

	places := make([]domain_models.Place, 0, len(payload.Results))
	for _, raw := range payload.Results {
		places = append(places, normalizeFsqPlace(raw))
	}
	return places, nil
}

// normalizeFsqPlace flattens the wire record into the canonical Place.
// Results keep the API's own relevance order.
func normalizeFsqPlace(raw fsqPlace) domain_models.Place {
	id := raw.FsqPlaceID
	if id == "" {
		id = raw.FsqID
	}
	if id == "" {
		id = raw.AltID
	}

	lat := raw.Latitude
	lon := raw.Longitude
	if lat == nil || lon == nil {
		lat = raw.Geocodes.Main.Latitude
		lon = raw.Geocodes.Main.Longitude
	}

	address := raw.Location.FormattedAddress
	if address == "" {
		address = raw.Location.Address
	}
	if address == "" {
		address = raw.Location.Locality
	}

	tags, unparsed := normalizeCategories(raw.Categories)

	return domain_models.Place{
		ID:           id,
		Name:         raw.Name,
		Address:      address,
		Latitude:     lat,
		Longitude:    lon,
		PriceTier:    raw.Price,
		Popularity:   raw.Popularity,
		Tags:         tags,
		UnparsedTags: unparsed,
	}
}

// normalizeCategories accepts both bare-string and {"name": ...} category
// records. Anything else marks the place's tags as unparsed, which the
// category filter treats as a match.
func normalizeCategories(raws []json.RawMessage) ([]string, bool) {
	var tags []string
	unparsed := false

	for _, raw := range raws {
		var name string
		if err := json.Unmarshal(raw, &name); err == nil {
			tags = append(tags, name)
			continue
		}
		var obj struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(raw, &obj); err == nil && obj.Name != "" {
			tags = append(tags, obj.Name)
			continue
		}
		unparsed = true
	}

	return tags, unparsed
}
