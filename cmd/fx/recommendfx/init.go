package recommendfx

import (
	"go.uber.org/fx"
	"weekendwish/internal/repositories"
	"weekendwish/internal/services"
)

var Module = fx.Provide(
	provideGeocodeService,
	provideRankerService,
	provideRecommendService,
)

func provideGeocodeService() services.GeocodeServiceInterface {
	return services.NewNominatimClient(services.NewInMemoryGeocodeCache())
}

func provideRankerService() services.RankerServiceInterface {
	return services.NewRankerService()
}

func provideRecommendService(
	geocoder services.GeocodeServiceInterface,
	ranker services.RankerServiceInterface,
	online *services.FoursquareClient,
	offline *repositories.OfflinePlaceRepository,
	database repositories.PlaceRepository,
) services.RecommendServiceInterface {
	return services.NewRecommendService(geocoder, ranker, online, offline, database)
}
