package services

import (
	"math"
	"weekendwish/internal/models/domain_models"
	"weekendwish/pkg/utils"
)

// Average touring speed used for travel-time estimates, in km/h.
const avgTravelSpeedKmh = 20

type RouteServiceInterface interface {
	Sequence(places []domain_models.RankedPlace, start *domain_models.Coordinates) ([]domain_models.RouteStop, error)
}

type RouteService struct{}

func NewRouteService() RouteServiceInterface {
	return &RouteService{}
}

// Sequence orders places by greedy nearest-neighbor from the start
// coordinate and annotates each stop with a synthetic schedule. The output
// is always a permutation of the input; places without coordinates go last,
// in their original relative order.
func (r *RouteService) Sequence(places []domain_models.RankedPlace, start *domain_models.Coordinates) ([]domain_models.RouteStop, error) {
	if start == nil {
		return nil, utils.ErrInvalidStart
	}
	if len(places) == 0 {
		return []domain_models.RouteStop{}, nil
	}

	type candidate struct {
		place  domain_models.RankedPlace
		coords domain_models.Coordinates
		hasPos bool
	}

	remaining := make([]candidate, 0, len(places))
	for _, p := range places {
		coords, ok := p.Coords()
		remaining = append(remaining, candidate{place: p, coords: coords, hasPos: ok})
	}

	ordered := make([]domain_models.RouteStop, 0, len(places))
	position := *start

	for {
		best := -1
		bestDistance := math.Inf(1)
		for i, c := range remaining {
			if !c.hasPos {
				continue
			}
			d := utils.HaversineMeters(position.Lat, position.Lon, c.coords.Lat, c.coords.Lon)
			// Strict less-than keeps the first-seen candidate on ties.
			if d < bestDistance {
				best = i
				bestDistance = d
			}
		}
		if best == -1 {
			break
		}

		chosen := remaining[best]
		remaining = append(remaining[:best], remaining[best+1:]...)
		ordered = append(ordered, domain_models.RouteStop{
			RankedPlace:  chosen.place,
			LegDistanceM: bestDistance,
		})
		position = chosen.coords
	}

	// Whatever is left has no usable coordinates; append in input order.
	for _, c := range remaining {
		ordered = append(ordered, domain_models.RouteStop{RankedPlace: c.place})
	}

	annotateSchedule(ordered)
	return ordered, nil
}

// annotateSchedule assigns travel, stay and clock times starting at 09:00.
func annotateSchedule(stops []domain_models.RouteStop) {
	previousDeparture := utils.DayStartMinute

	for i := range stops {
		stop := &stops[i]

		if i == 0 {
			stop.TravelMinutes = 0
		} else {
			stop.TravelMinutes = travelMinutes(stop.LegDistanceM)
		}

		stop.StayMinutes = stayMinutes(stop.PopularityValue())
		stop.Arrival = previousDeparture + stop.TravelMinutes
		stop.Departure = stop.Arrival + stop.StayMinutes
		previousDeparture = stop.Departure
	}
}

func travelMinutes(distanceM float64) int {
	minutes := int(math.Ceil(distanceM / 1000 / avgTravelSpeedKmh * 60))
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

func stayMinutes(popularity float64) int {
	switch {
	case popularity >= 8:
		return 90
	case popularity >= 5:
		return 60
	default:
		return 40
	}
}
