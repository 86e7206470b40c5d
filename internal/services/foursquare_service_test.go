package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"weekendwish/internal/models/domain_models"

	"github.com/stretchr/testify/require"
)

func newTestFoursquareClient(srv *httptest.Server) *FoursquareClient {
	return &FoursquareClient{
		HTTP:    srv.Client(),
		APIKey:  "test-key",
		BaseURL: srv.URL,
	}
}

func TestFoursquareFetchPlaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v3/places/search", r.URL.Path)
		require.Equal(t, "test-key", r.Header.Get("Authorization"))
		require.Equal(t, "8000", r.URL.Query().Get("radius"))
		require.Equal(t, "40", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"results":[
			{"fsq_place_id":"p1","name":"Noodle Bar","price":2,"popularity":7,
			 "latitude":35.69,"longitude":139.70,
			 "location":{"formatted_address":"1-2-3 Shinjuku"},
			 "categories":[{"name":"Ramen Restaurant"},{"name":"Noodle House"}]},
			{"fsq_id":"p2","name":"Old Gallery",
			 "geocodes":{"main":{"latitude":35.68,"longitude":139.71}},
			 "location":{"address":"4-5-6 Yoyogi"},
			 "categories":["Art Gallery"]}
		]}`))
	}))
	defer srv.Close()

	client := newTestFoursquareClient(srv)
	places, err := client.FetchPlaces(context.Background(), domain_models.Coordinates{Lat: 35.69, Lon: 139.70}, 8000, 40)
	require.NoError(t, err)
	require.Len(t, places, 2)

	first := places[0]
	require.Equal(t, "p1", first.ID)
	require.Equal(t, "Noodle Bar", first.Name)
	require.Equal(t, "1-2-3 Shinjuku", first.Address)
	require.Equal(t, 2.0, *first.PriceTier)
	require.Equal(t, 7.0, *first.Popularity)
	require.Equal(t, []string{"Ramen Restaurant", "Noodle House"}, first.Tags)
	require.False(t, first.UnparsedTags)

	second := places[1]
	require.Equal(t, "p2", second.ID)
	require.Equal(t, "4-5-6 Yoyogi", second.Address)
	require.Nil(t, second.PriceTier)
	require.Equal(t, 35.68, *second.Latitude)
	require.Equal(t, []string{"Art Gallery"}, second.Tags)
}

func TestFoursquareMalformedCategories(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[
			{"id":"p3","name":"Mystery Spot","latitude":1,"longitude":1,
			 "categories":[42,{"name":"Museum"}]}
		]}`))
	}))
	defer srv.Close()

	client := newTestFoursquareClient(srv)
	places, err := client.FetchPlaces(context.Background(), domain_models.Coordinates{}, 1000, 5)
	require.NoError(t, err)
	require.Len(t, places, 1)
	require.Equal(t, "p3", places[0].ID)
	require.Equal(t, []string{"Museum"}, places[0].Tags)
	require.True(t, places[0].UnparsedTags)
}

func TestFoursquareBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := newTestFoursquareClient(srv)
	_, err := client.FetchPlaces(context.Background(), domain_models.Coordinates{}, 1000, 5)
	require.Error(t, err)
}

func TestFoursquareKind(t *testing.T) {
	client := &FoursquareClient{HTTP: &http.Client{Timeout: time.Second}}
	require.Equal(t, domain_models.SourceOnline, client.Kind())
}
