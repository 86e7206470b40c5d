package response_models

import (
	"weekendwish/internal/models/domain_models"
	"weekendwish/pkg/utils"
)

type RouteStop struct {
	ID            string   `json:"id,omitempty"`
	Name          string   `json:"name"`
	Address       string   `json:"address,omitempty"`
	Lat           *float64 `json:"lat"`
	Lon           *float64 `json:"lon"`
	LegDistanceM  float64  `json:"leg_distance_m"`
	TravelMinutes int      `json:"travel_minutes"`
	StayMinutes   int      `json:"stay_minutes"`
	Arrival       string   `json:"arrival"`
	Departure     string   `json:"departure"`
}

type RouteResponse struct {
	Stops          []RouteStop `json:"stops"`
	TotalDistanceM float64     `json:"total_distance_m"`
	Itinerary      string      `json:"itinerary,omitempty"`
}

func BuildRouteResponse(stops []domain_models.RouteStop, itinerary string) RouteResponse {
	out := RouteResponse{
		Stops:     make([]RouteStop, 0, len(stops)),
		Itinerary: itinerary,
	}

	for _, stop := range stops {
		out.TotalDistanceM += stop.LegDistanceM
		out.Stops = append(out.Stops, RouteStop{
			ID:            stop.ID,
			Name:          stop.Name,
			Address:       stop.Address,
			Lat:           stop.Latitude,
			Lon:           stop.Longitude,
			LegDistanceM:  stop.LegDistanceM,
			TravelMinutes: stop.TravelMinutes,
			StayMinutes:   stop.StayMinutes,
			Arrival:       utils.FormatClock(stop.Arrival),
			Departure:     utils.FormatClock(stop.Departure),
		})
	}

	return out
}
