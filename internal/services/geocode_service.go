package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"sync"
	"time"
	"weekendwish/internal/models/domain_models"
	"weekendwish/pkg/utils"
)

type GeocodeServiceInterface interface {
	Geocode(ctx context.Context, address string) (domain_models.Coordinates, error)
}

// --------- In-memory cache per address ---------

type geocodeCacheEntry struct {
	Coords    domain_models.Coordinates
	ExpiresAt time.Time
}

type GeocodeCache interface {
	Get(address string) (domain_models.Coordinates, bool)
	Set(address string, coords domain_models.Coordinates, ttl time.Duration)
}

type inMemoryGeocodeCache struct {
	mu    sync.RWMutex
	store map[string]geocodeCacheEntry
}

func NewInMemoryGeocodeCache() GeocodeCache {
	return &inMemoryGeocodeCache{store: make(map[string]geocodeCacheEntry)}
}

func (c *inMemoryGeocodeCache) Get(address string) (domain_models.Coordinates, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.store[address]
	if !ok || time.Now().After(it.ExpiresAt) {
		return domain_models.Coordinates{}, false
	}
	return it.Coords, true
}

func (c *inMemoryGeocodeCache) Set(address string, coords domain_models.Coordinates, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[address] = geocodeCacheEntry{Coords: coords, ExpiresAt: time.Now().Add(ttl)}
}

// -------------- Nominatim client ---------------

type NominatimClient struct {
	HTTP       *http.Client
	BaseURL    string
	UserAgent  string
	Cache      GeocodeCache
	DefaultTTL time.Duration
}

func NewNominatimClient(cache GeocodeCache) *NominatimClient {
	baseURL := os.Getenv("NOMINATIM_URL")
	if baseURL == "" {
		baseURL = "https://nominatim.openstreetmap.org"
	}
	return &NominatimClient{
		HTTP:       &http.Client{Timeout: 10 * time.Second},
		BaseURL:    baseURL,
		UserAgent:  "weekendwish/1.0",
		Cache:      cache,
		DefaultTTL: 24 * time.Hour,
	}
}

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func (c *NominatimClient) Geocode(ctx context.Context, address string) (domain_models.Coordinates, error) {
	if address == "" {
		return domain_models.Coordinates{}, utils.ErrGeocodeFailure
	}

	if coords, ok := c.Cache.Get(address); ok {
		return coords, nil
	}

	q := url.Values{}
	q.Set("q", address)
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return domain_models.Coordinates{}, utils.ErrGeocodeFailure
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return domain_models.Coordinates{}, fmt.Errorf("%w: %v", utils.ErrGeocodeFailure, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return domain_models.Coordinates{}, fmt.Errorf("%w: bad status %s", utils.ErrGeocodeFailure, resp.Status)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return domain_models.Coordinates{}, fmt.Errorf("%w: decode: %v", utils.ErrGeocodeFailure, err)
	}
	if len(results) == 0 {
		return domain_models.Coordinates{}, utils.ErrGeocodeFailure
	}

	lat, err1 := strconv.ParseFloat(results[0].Lat, 64)
	lon, err2 := strconv.ParseFloat(results[0].Lon, 64)
	if err1 != nil || err2 != nil {
		return domain_models.Coordinates{}, utils.ErrGeocodeFailure
	}

	coords := domain_models.Coordinates{Lat: lat, Lon: lon}
	c.Cache.Set(address, coords, c.DefaultTTL)
	return coords, nil
}
