package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"weekendwish/internal/models/domain_models"
	"weekendwish/internal/models/request_models"
	"weekendwish/internal/models/response_models"
	"weekendwish/internal/services"
	"weekendwish/pkg/utils"
)

type RouteController struct {
	routeService     services.RouteServiceInterface
	itineraryService services.ItineraryServiceInterface
}

func NewRouteController(
	routeService services.RouteServiceInterface,
	itineraryService services.ItineraryServiceInterface,
) *RouteController {
	return &RouteController{
		routeService:     routeService,
		itineraryService: itineraryService,
	}
}

func (r *RouteController) BuildRoute(c *gin.Context) {
	var req request_models.RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid route request (up to 6 places, start required)")
		return
	}

	var start *domain_models.Coordinates
	if req.Start.Lat != nil && req.Start.Lon != nil {
		start = &domain_models.Coordinates{Lat: *req.Start.Lat, Lon: *req.Start.Lon}
	}

	places := make([]domain_models.RankedPlace, 0, len(req.Places))
	for _, p := range req.Places {
		places = append(places, domain_models.RankedPlace{
			Place: domain_models.Place{
				ID:         p.ID,
				Name:       p.Name,
				Address:    p.Address,
				Latitude:   p.Lat,
				Longitude:  p.Lon,
				Popularity: p.Popularity,
			},
			Score: services.PopularityScore(valueOrZero(p.Popularity)),
		})
	}

	stops, err := r.routeService.Sequence(places, start)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	itinerary := ""
	if req.Itinerary {
		itinerary = r.itineraryService.GenerateItinerary(c.Request.Context(), stops, req.Budget, req.People)
	}

	utils.RespondSuccess(c, response_models.BuildRouteResponse(stops, itinerary), "Route built successfully")
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
