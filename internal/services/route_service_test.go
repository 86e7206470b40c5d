package services

import (
	"math"
	"testing"
	"weekendwish/internal/models/domain_models"
	"weekendwish/pkg/utils"

	"github.com/stretchr/testify/require"
)

func rankedAt(name string, lat, lon float64) domain_models.RankedPlace {
	return domain_models.RankedPlace{Place: placeAt(name, lat, lon)}
}

func TestSequenceEmptyInput(t *testing.T) {
	stops, err := NewRouteService().Sequence(nil, &domain_models.Coordinates{})
	require.NoError(t, err)
	require.Empty(t, stops)
}

func TestSequenceInvalidStart(t *testing.T) {
	_, err := NewRouteService().Sequence([]domain_models.RankedPlace{rankedAt("a", 0, 0)}, nil)
	require.ErrorIs(t, err, utils.ErrInvalidStart)
}

func TestSequenceNearestNeighbor(t *testing.T) {
	start := domain_models.Coordinates{Lat: 0, Lon: 0}
	far := rankedAt("far", 1.0, 0)   // ~111 km
	near := rankedAt("near", 0.1, 0) // ~11 km

	stops, err := NewRouteService().Sequence([]domain_models.RankedPlace{far, near}, &start)
	require.NoError(t, err)
	require.Len(t, stops, 2)
	require.Equal(t, "near", stops[0].Name)
	require.Equal(t, "far", stops[1].Name)
}

func TestSequenceIsPermutation(t *testing.T) {
	start := domain_models.Coordinates{Lat: 0, Lon: 0}
	input := []domain_models.RankedPlace{
		rankedAt("a", 0.5, 0.1),
		rankedAt("b", 0.1, 0.4),
		rankedAt("c", 0.9, 0.9),
		rankedAt("d", 0.2, 0.2),
	}

	stops, err := NewRouteService().Sequence(input, &start)
	require.NoError(t, err)
	require.Len(t, stops, len(input))

	names := make([]string, 0, len(stops))
	for _, s := range stops {
		names = append(names, s.Name)
	}
	require.ElementsMatch(t, []string{"a", "b", "c", "d"}, names)
}

func TestSequenceTieBreaksByInputOrder(t *testing.T) {
	start := domain_models.Coordinates{Lat: 0, Lon: 0}
	// Same distance from start, east and west.
	east := rankedAt("east", 0, 0.2)
	west := rankedAt("west", 0, -0.2)

	stops, err := NewRouteService().Sequence([]domain_models.RankedPlace{east, west}, &start)
	require.NoError(t, err)
	require.Equal(t, "east", stops[0].Name)
}

func TestSequenceUndefinedCoordinatesGoLast(t *testing.T) {
	start := domain_models.Coordinates{Lat: 0, Lon: 0}
	blindA := domain_models.RankedPlace{Place: domain_models.Place{Name: "blind-a"}}
	blindB := domain_models.RankedPlace{Place: domain_models.Place{Name: "blind-b"}}
	located := rankedAt("located", 0.1, 0)

	stops, err := NewRouteService().Sequence([]domain_models.RankedPlace{blindA, located, blindB}, &start)
	require.NoError(t, err)
	require.Len(t, stops, 3)
	require.Equal(t, "located", stops[0].Name)
	// Original relative order among the coordinate-less places.
	require.Equal(t, "blind-a", stops[1].Name)
	require.Equal(t, "blind-b", stops[2].Name)
}

func TestScheduleAnnotation(t *testing.T) {
	start := domain_models.Coordinates{Lat: 0, Lon: 0}

	// ~9.995 km north of the first stop, so travel rounds to 30 minutes.
	deltaLat := 9995.0 / 6371000.0 * 180 / math.Pi

	first := rankedAt("first", 0, 0)
	first.Popularity = fp(10) // stay 90
	second := rankedAt("second", deltaLat, 0)
	second.Popularity = fp(6) // stay 60
	third := rankedAt("third", deltaLat, 0.0001)
	// no popularity -> stay 40

	stops, err := NewRouteService().Sequence([]domain_models.RankedPlace{first, second, third}, &start)
	require.NoError(t, err)
	require.Len(t, stops, 3)

	// First stop: no preceding travel, day starts 09:00.
	require.Equal(t, 0, stops[0].TravelMinutes)
	require.Equal(t, utils.DayStartMinute, stops[0].Arrival)
	require.Equal(t, 90, stops[0].StayMinutes)
	require.Equal(t, utils.DayStartMinute+90, stops[0].Departure)

	// Second stop: 10 km at 20 km/h -> 30 minutes.
	require.Equal(t, "second", stops[1].Name)
	require.Equal(t, 30, stops[1].TravelMinutes)
	require.Equal(t, stops[0].Departure+30, stops[1].Arrival)
	require.Equal(t, 60, stops[1].StayMinutes)

	// Third stop: a few meters away still costs the 1-minute minimum.
	require.Equal(t, 1, stops[2].TravelMinutes)
	require.Equal(t, 40, stops[2].StayMinutes)
	require.Equal(t, stops[1].Departure+1, stops[2].Arrival)
}

func TestStayMinutesTiers(t *testing.T) {
	require.Equal(t, 90, stayMinutes(8))
	require.Equal(t, 90, stayMinutes(12))
	require.Equal(t, 60, stayMinutes(5))
	require.Equal(t, 60, stayMinutes(7.5))
	require.Equal(t, 40, stayMinutes(4.9))
	require.Equal(t, 40, stayMinutes(0))
}
