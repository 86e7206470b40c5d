package controllersfx

import (
	"go.uber.org/fx"
	"weekendwish/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewRecommendController,
	controllers.NewRouteController,
	controllers.NewPlacesController,
	controllers.NewAuthController,
)
