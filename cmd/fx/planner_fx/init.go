package plannerfx

import (
	"go.uber.org/fx"

	"yatra/internal/repositories"
	"yatra/internal/services"
)

var Module = fx.Provide(
	services.NewTravelService,
	services.NewRecoveryService,
	providePlannerService,
)

func providePlannerService(refRepo repositories.POIReferenceRepository, travel services.TravelServiceInterface) services.PlannerServiceInterface {
	return services.NewPlannerService(refRepo, travel)
}
