package routefx

import (
	"go.uber.org/fx"
	"weekendwish/internal/services"
)

var Module = fx.Provide(provideRouteService)

func provideRouteService() services.RouteServiceInterface {
	return services.NewRouteService()
}
