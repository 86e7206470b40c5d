package services

import (
	"context"
	"testing"
	"weekendwish/internal/models/domain_models"
	"weekendwish/internal/models/request_models"
	"weekendwish/pkg/utils"

	"github.com/stretchr/testify/require"
)

type stubGeocoder struct {
	coords domain_models.Coordinates
	err    error
	calls  int
}

func (g *stubGeocoder) Geocode(ctx context.Context, address string) (domain_models.Coordinates, error) {
	g.calls++
	return g.coords, g.err
}

func newTestRecommendService(geocoder GeocodeServiceInterface, online, offline domain_models.PlaceSource) RecommendServiceInterface {
	return NewRecommendService(geocoder, NewRankerService(), online, offline, &stubSource{kind: domain_models.SourceDatabase})
}

func TestRecommendParsesLatLngWithoutGeocoding(t *testing.T) {
	geocoder := &stubGeocoder{}
	online := &stubSource{kind: domain_models.SourceOnline, places: []domain_models.Place{placeAt("a", 18.51, 73.85)}}

	svc := newTestRecommendService(geocoder, online, &stubSource{kind: domain_models.SourceOffline})
	resp, err := svc.Recommend(context.Background(), request_models.RecommendRequest{
		Budget: 2000, People: 2, Start: "18.50, 73.85", Source: "online",
	})
	require.NoError(t, err)
	require.Zero(t, geocoder.calls)
	require.InDelta(t, 18.50, resp.StartCoords.Lat, 1e-9)
	require.InDelta(t, 1000.0, resp.BudgetPerPerson, 1e-9)
	require.Len(t, resp.Results, 1)
}

func TestRecommendGeocodesFreeText(t *testing.T) {
	geocoder := &stubGeocoder{coords: domain_models.Coordinates{Lat: 18.50, Lon: 73.85}}
	online := &stubSource{kind: domain_models.SourceOnline, places: []domain_models.Place{placeAt("a", 18.51, 73.85)}}

	svc := newTestRecommendService(geocoder, online, &stubSource{kind: domain_models.SourceOffline})
	resp, err := svc.Recommend(context.Background(), request_models.RecommendRequest{
		Budget: 500, People: 1, Start: "Kothrud, Pune is lovely", Source: "online",
	})
	require.NoError(t, err)
	require.Equal(t, 1, geocoder.calls)
	require.InDelta(t, 18.50, resp.StartCoords.Lat, 1e-9)
}

func TestRecommendGeocodeFailure(t *testing.T) {
	geocoder := &stubGeocoder{err: utils.ErrGeocodeFailure}

	svc := newTestRecommendService(geocoder, &stubSource{kind: domain_models.SourceOnline}, &stubSource{kind: domain_models.SourceOffline})
	_, err := svc.Recommend(context.Background(), request_models.RecommendRequest{
		Budget: 500, People: 1, Start: "nowhere at all",
	})
	require.ErrorIs(t, err, utils.ErrGeocodeFailure)
}

func TestRecommendAutoFallsBackToOffline(t *testing.T) {
	geocoder := &stubGeocoder{}
	online := &stubSource{kind: domain_models.SourceOnline, err: context.DeadlineExceeded}
	offline := &stubSource{kind: domain_models.SourceOffline, places: []domain_models.Place{placeAt("backup", 0.01, 0)}}

	svc := newTestRecommendService(geocoder, online, offline)
	resp, err := svc.Recommend(context.Background(), request_models.RecommendRequest{
		Budget: 500, People: 1, Start: "0.0,0.0",
	})
	require.NoError(t, err)
	require.Equal(t, "offline", resp.Source)
	require.Len(t, resp.Results, 1)
	require.Equal(t, "backup", resp.Results[0].Name)
}

func TestRecommendAutoFallsBackOnEmptyOnlineResult(t *testing.T) {
	geocoder := &stubGeocoder{}
	online := &stubSource{kind: domain_models.SourceOnline}
	offline := &stubSource{kind: domain_models.SourceOffline, places: []domain_models.Place{placeAt("backup", 0.01, 0)}}

	svc := newTestRecommendService(geocoder, online, offline)
	resp, err := svc.Recommend(context.Background(), request_models.RecommendRequest{
		Budget: 500, People: 1, Start: "0.0,0.0",
	})
	require.NoError(t, err)
	require.Equal(t, "offline", resp.Source)
}

func TestRecommendRejectsUnknownSource(t *testing.T) {
	svc := newTestRecommendService(&stubGeocoder{}, &stubSource{kind: domain_models.SourceOnline}, &stubSource{kind: domain_models.SourceOffline})
	_, err := svc.Recommend(context.Background(), request_models.RecommendRequest{
		Budget: 500, People: 1, Start: "0,0", Source: "carrier-pigeon",
	})
	require.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestRecommendZeroPeopleCountsAsOne(t *testing.T) {
	online := &stubSource{kind: domain_models.SourceOnline, places: []domain_models.Place{placeAt("a", 0.01, 0)}}

	svc := newTestRecommendService(&stubGeocoder{}, online, &stubSource{kind: domain_models.SourceOffline})
	resp, err := svc.Recommend(context.Background(), request_models.RecommendRequest{
		Budget: 900, People: 0, Start: "0,0", Source: "online",
	})
	require.NoError(t, err)
	require.InDelta(t, 900.0, resp.BudgetPerPerson, 1e-9)
}
