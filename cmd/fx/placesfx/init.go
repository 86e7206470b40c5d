package placesfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"weekendwish/internal/repositories"
	"weekendwish/internal/services"
)

var Module = fx.Provide(
	providePlaceRepo,
	providePlaceService,
	provideOfflineRepo,
	provideFoursquareClient,
)

func providePlaceRepo(db *gorm.DB) repositories.PlaceRepository {
	return repositories.NewPlaceRepository(db)
}

func providePlaceService(placeRepo repositories.PlaceRepository) services.PlaceServiceInterface {
	return services.NewPlaceService(placeRepo)
}

func provideOfflineRepo() *repositories.OfflinePlaceRepository {
	return repositories.NewOfflinePlaceRepository()
}

func provideFoursquareClient() *services.FoursquareClient {
	return services.NewFoursquareClient()
}
