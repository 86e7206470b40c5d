package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"weekendwish/internal/models/domain_models"

	"github.com/stretchr/testify/require"
)

func writeSnapshot(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "places.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestOfflineFetchParsesColumns(t *testing.T) {
	path := writeSnapshot(t, `name,address,lat,lon,popularity,price_tier,category
Shaniwar Wada,Shaniwar Peth,18.5195,73.8553,9.5,2,fort history
Vaishali,FC Road,18.5226,73.8410,8,,restaurant
Mystery Spot,,18.5300,73.8600,not-a-number,abc,
`)

	repo := &OfflinePlaceRepository{Path: path}
	require.Equal(t, domain_models.SourceOffline, repo.Kind())

	places, err := repo.FetchPlaces(context.Background(), domain_models.Coordinates{Lat: 18.52, Lon: 73.85}, 8000, 40)
	require.NoError(t, err)
	require.Len(t, places, 3)

	first := places[0]
	require.Equal(t, "Shaniwar Wada", first.Name)
	require.Equal(t, "Shaniwar Peth", first.Address)
	require.NotNil(t, first.Latitude)
	require.InDelta(t, 18.5195, *first.Latitude, 1e-9)
	require.NotNil(t, first.PriceTier)
	require.InDelta(t, 2, *first.PriceTier, 1e-9)
	require.Equal(t, "fort history", first.FreeText)

	// Empty price cell stays nil so the ranker can impute.
	require.Nil(t, places[1].PriceTier)

	// Non-numeric cells degrade to nil, never an error.
	require.Nil(t, places[2].Popularity)
	require.Nil(t, places[2].PriceTier)
}

func TestOfflineFetchAlternativeHeaders(t *testing.T) {
	path := writeSnapshot(t, `name,latitude,longitude,price,tags
Cafe Goodluck,18.5167,73.8415,1,cafe irani
`)

	repo := &OfflinePlaceRepository{Path: path}
	places, err := repo.FetchPlaces(context.Background(), domain_models.Coordinates{}, 8000, 40)
	require.NoError(t, err)
	require.Len(t, places, 1)
	require.NotNil(t, places[0].PriceTier)
	require.Equal(t, "cafe irani", places[0].FreeText)
}

func TestOfflineFetchMissingFile(t *testing.T) {
	repo := &OfflinePlaceRepository{Path: filepath.Join(t.TempDir(), "absent.csv")}
	_, err := repo.FetchPlaces(context.Background(), domain_models.Coordinates{}, 8000, 40)
	require.Error(t, err)
}

func TestOfflineFetchMissingCoordinateColumns(t *testing.T) {
	path := writeSnapshot(t, `name,address
Somewhere,Someplace
`)

	repo := &OfflinePlaceRepository{Path: path}
	_, err := repo.FetchPlaces(context.Background(), domain_models.Coordinates{}, 8000, 40)
	require.Error(t, err)
}
